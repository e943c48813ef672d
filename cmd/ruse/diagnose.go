package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ruse/internal/diag"
	"ruse/internal/diagfmt"
	"ruse/internal/driver"
	"ruse/internal/source"
	"ruse/internal/ui"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.rs|directory>",
	Short: "Run diagnostics on a source file or directory",
	Long:  `Run diagnostics to find syntax issues and lint findings in source files or all *.rs files within a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	diagCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	diagCmd.Flags().Bool("disk-cache", false, "enable the persistent diagnostics cache")
	diagCmd.Flags().Bool("tui", false, "show live progress for directory runs")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	enableCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	withTUI, err := cmd.Flags().GetBool("tui")
	if err != nil {
		return fmt.Errorf("failed to get tui flag: %w", err)
	}

	manifest, err := manifestFor(targetPath)
	if err != nil {
		return err
	}
	opts, err := buildDriverOptions(cmd, manifest, enableCache)
	if err != nil {
		return err
	}

	colored, err := useColor(cmd)
	if err != nil {
		return err
	}
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     colored,
		Context:   2,
		PathMode:  pathMode,
		ShowFixes: suggest,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         pathMode,
		IncludeFixes:     suggest,
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var result *driver.DiagnoseResult
	var dirResult *driver.DirResult
	if st.IsDir() {
		if withTUI && isTerminal(os.Stdout) {
			dirResult, err = diagnoseDirWithUI(cmd, targetPath, opts)
		} else {
			dirResult, err = driver.DiagnoseDir(cmd.Context(), targetPath, opts)
		}
		if err != nil {
			return fmt.Errorf("diagnosis failed: %w", err)
		}
	} else {
		result, err = driver.DiagnoseFile(targetPath, opts)
		if err != nil {
			return fmt.Errorf("diagnosis failed: %w", err)
		}
	}

	fs, bagOut := resultParts(result, dirResult)
	bagOut.Sort()

	switch format {
	case "pretty":
		if err := diagfmt.Pretty(os.Stdout, bagOut, fs, prettyOpts); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "short":
		if err := diagfmt.Short(os.Stdout, bagOut, fs); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, bagOut, fs, jsonOpts); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bagOut.HasErrors() {
		// diagnostics already printed; keep cobra quiet
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func resultParts(result *driver.DiagnoseResult, dirResult *driver.DirResult) (*source.FileSet, *diag.Bag) {
	if dirResult != nil {
		return dirResult.FileSet, dirResult.Bag
	}
	return result.FileSet, result.Bag
}

func diagnoseDirWithUI(cmd *cobra.Command, dir string, opts driver.DiagnoseOptions) (*driver.DirResult, error) {
	events := make(chan driver.FileEvent, 256)
	opts.Events = events

	type outcome struct {
		res *driver.DirResult
		err error
	}
	outcomeCh := make(chan outcome, 1)
	go func() {
		res, err := driver.DiagnoseDir(cmd.Context(), dir, opts)
		outcomeCh <- outcome{res: res, err: err}
	}()

	model := ui.NewProgressModel(fmt.Sprintf("diagnosing %s", dir), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.res, uiErr
	}
	return out.res, out.err
}
