package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"ruse/internal/driver"
	"ruse/internal/lint"
)

// buildDriverOptions merges persistent flags with the project
// manifest into driver options. Flags win over the manifest.
func buildDriverOptions(cmd *cobra.Command, manifest *projectManifest, wantCache bool) (driver.DiagnoseOptions, error) {
	var opts driver.DiagnoseOptions

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if manifest != nil && manifest.Config.Lint.MaxDiagnostics > 0 &&
		!cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics = manifest.Config.Lint.MaxDiagnostics
	}
	opts.MaxDiagnostics = maxDiagnostics

	if manifest != nil {
		opts.Checks = lint.Select(manifest.Config.Lint.Disable)
	}

	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return opts, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if verbose {
		opts.Logger = hclog.New(&hclog.LoggerOptions{
			Name:   "ruse",
			Level:  hclog.Debug,
			Output: os.Stderr,
		})
	}

	if wantCache || (manifest != nil && manifest.Config.Lint.Cache) {
		cache, err := driver.OpenDiskCache("ruse")
		if err != nil {
			return opts, fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}
