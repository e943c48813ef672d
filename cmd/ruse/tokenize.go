package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ruse/internal/diagfmt"
	"ruse/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rs",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks down a source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	for _, lexErr := range result.Errors {
		start, _ := result.FileSet.Resolve(lexErr.Span)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n",
			result.File.FormatPath("auto", result.FileSet.BaseDir()),
			start.Line, start.Col, lexErr.Msg)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
