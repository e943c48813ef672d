package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ruse/internal/driver"
	"ruse/internal/syntax"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rs",
	Short: "Parse a source file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := driver.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	syntax.Dump(os.Stdout, result.Tree)
	return nil
}
