package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ruse/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		colored, err := useColor(cmd)
		if err != nil {
			return err
		}
		v := version.Version
		if !colored {
			v = version.Plain
		}
		fmt.Fprintf(os.Stdout, "ruse %s\n", v)
		if version.GitCommit != "" {
			fmt.Fprintf(os.Stdout, "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(os.Stdout, "built:  %s\n", version.BuildDate)
		}
		return nil
	},
}
