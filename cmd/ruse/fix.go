package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ruse/internal/diag"
	"ruse/internal/driver"
	"ruse/internal/fix"
	"ruse/internal/source"
	"ruse/internal/ui"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.rs|directory>",
	Short: "Apply available fixes to a source file or directory",
	Long:  "Run diagnostics, surface available fixes, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply fix with a specific identifier")
	fixCmd.Flags().BoolP("interactive", "i", false, "pick fixes interactively")
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	modeFlags := 0
	for _, set := range []bool{applyAll, applyOnceFlag, targetID != "", interactive} {
		if set {
			modeFlags++
		}
	}
	if modeFlags > 1 {
		return fmt.Errorf("--all, --once, --id, and --interactive are mutually exclusive")
	}

	opts := fix.ApplyOptions{Mode: fix.ApplyModeOnce, DryRun: dryRun}
	switch {
	case targetID != "":
		opts.Mode = fix.ApplyModeID
		opts.TargetID = targetID
	case applyAll:
		opts.Mode = fix.ApplyModeAll
	}

	manifest, err := manifestFor(targetPath)
	if err != nil {
		return err
	}
	// fixes must be computed from fresh trees, never the cache
	driverOpts, err := buildDriverOptions(cmd, manifest, false)
	if err != nil {
		return err
	}
	driverOpts.Cache = nil

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	// an id is only unique within one file's diagnostics
	if info.IsDir() && targetID != "" {
		return fmt.Errorf("fix: id can only be used with a single file")
	}

	var (
		fileSet     *source.FileSet
		diagnostics []diag.Diagnostic
	)
	if info.IsDir() {
		dirResult, err := driver.DiagnoseDir(cmd.Context(), targetPath, driverOpts)
		if err != nil {
			return fmt.Errorf("fix: diagnose dir failed: %w", err)
		}
		dirResult.Bag.Sort()
		fileSet = dirResult.FileSet
		diagnostics = dirResult.Bag.Items()
	} else {
		result, err := driver.DiagnoseFile(targetPath, driverOpts)
		if err != nil {
			return fmt.Errorf("fix: diagnose failed: %w", err)
		}
		result.Bag.Sort()
		fileSet = result.FileSet
		diagnostics = result.Bag.Items()
	}

	if interactive {
		ids, err := pickFixes(fileSet, diagnostics)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Fprintln(os.Stdout, "No fixes selected.")
			return nil
		}
		opts.Mode = fix.ApplyModeSet
		opts.TargetIDs = ids
	}

	res, applyErr := fix.Apply(fileSet, diagnostics, opts)
	return handleApplyResult(res, applyErr, dryRun)
}

// pickFixes runs the interactive picker and returns the chosen IDs.
func pickFixes(fileSet *source.FileSet, diagnostics []diag.Diagnostic) ([]string, error) {
	candidates := fix.Candidates(diagnostics)
	if len(candidates) == 0 {
		return nil, nil
	}
	items := make([]ui.PickItem, 0, len(candidates))
	for _, cand := range candidates {
		f := fileSet.Get(cand.Primary.File)
		start, _ := fileSet.Resolve(cand.Primary)
		items = append(items, ui.PickItem{
			ID:       cand.ID,
			Title:    cand.Title,
			Message:  cand.Message,
			Location: fmt.Sprintf("%s:%d:%d", f.FormatPath("auto", fileSet.BaseDir()), start.Line, start.Col),
		})
	}
	program := tea.NewProgram(ui.NewFixPicker(items), tea.WithOutput(os.Stdout))
	model, err := program.Run()
	if err != nil {
		return nil, err
	}
	return ui.PickedIDs(model), nil
}

func handleApplyResult(res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		verb := "Applied"
		if dryRun {
			verb = "Would apply"
		}
		fmt.Fprintf(os.Stdout, "%s %d fix(es):\n", verb, len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(os.Stdout, "  %s [%s] %s (%d edits)\n",
				item.Title, item.ID, location, item.EditCount)
		}
	}

	if len(res.FileChanges) > 0 && !dryRun {
		fmt.Fprintln(os.Stdout, "Updated files:")
		for _, change := range res.FileChanges {
			fmt.Fprintf(os.Stdout, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(os.Stdout, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(os.Stdout, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(os.Stdout, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Fprintln(os.Stdout, "No applicable fixes found.")
			return nil
		}
		return applyErr
	}
	if len(res.Applied) == 0 {
		fmt.Fprintln(os.Stdout, "No fixes applied.")
	}
	return nil
}
