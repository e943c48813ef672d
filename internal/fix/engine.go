// Package fix selects and applies the quickfixes attached to
// diagnostics. Selection is deterministic; application is
// transactional per fix, so a conflicting or stale fix is skipped
// without corrupting the file.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"ruse/internal/diag"
	"ruse/internal/source"
	"ruse/internal/textedit"
)

// ErrNoFixes is returned when nothing was applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines which fixes get applied.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first candidate in document order.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every non-conflicting candidate.
	ApplyModeAll
	// ApplyModeID applies the single fix with the given ID.
	ApplyModeID
	// ApplyModeSet applies every fix whose ID is in TargetIDs. The
	// interactive picker uses this.
	ApplyModeSet
)

// ApplyOptions configures fix selection and output.
type ApplyOptions struct {
	Mode      ApplyMode
	TargetID  string
	TargetIDs []string
	// DryRun computes the result without touching the filesystem.
	DryRun bool
}

// AppliedFix records one applied fix.
type AppliedFix struct {
	ID          string
	Title       string
	Code        diag.Code
	Message     string
	PrimaryPath string
	EditCount   int
}

// SkippedFix records a fix that was not applied, with the reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications to one file. NewContent is the
// post-edit text, also available on dry runs.
type FileChange struct {
	Path       string
	EditCount  int
	NewContent []byte
}

// ApplyResult aggregates applied fixes, skips, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply gathers fixes from diagnostics, selects per opts, and applies
// the survivors. Edits are interpreted against the FileSet's snapshot
// of each file; a file that changed on disk since loading makes its
// fixes stale and they are skipped.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{
		Applied:     make([]AppliedFix, 0),
		Skipped:     make([]SkippedFix, 0),
		FileChanges: make([]FileChange, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, selectionSkips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, selectionSkips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	applied, applySkips, changes, err := applyCandidates(fs, selected, opts)
	result.Applied = append(result.Applied, applied...)
	result.Skipped = append(result.Skipped, applySkips...)
	result.FileChanges = append(result.FileChanges, changes...)
	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// gatherCandidates flattens diagnostics into one candidate per fix,
// synthesizing an ID when the check did not assign one. The order
// field keeps insertion order as the stable-sort tiebreaker.
func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	cands := make([]candidate, 0)
	order := 0
	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			if f.Edit.Empty() {
				continue
			}
			if f.ID == "" {
				f.ID = fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start, idx)
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands
}

func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if candidates[i].order != candidates[j].order {
			return candidates[i].order < candidates[j].order
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return candidates[i].fix.ID < candidates[j].fix.ID
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.fix.ID == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{
			ID:     opts.TargetID,
			Reason: "fix id not found",
		}}
	case ApplyModeSet:
		want := make(map[string]bool, len(opts.TargetIDs))
		for _, id := range opts.TargetIDs {
			want[id] = true
		}
		selected := make([]candidate, 0, len(opts.TargetIDs))
		for _, cand := range candidates {
			if want[cand.fix.ID] {
				selected = append(selected, cand)
				delete(want, cand.fix.ID)
			}
		}
		skipped := make([]SkippedFix, 0)
		for id := range want {
			skipped = append(skipped, SkippedFix{ID: id, Reason: "fix id not found"})
		}
		sort.Slice(skipped, func(i, j int) bool { return skipped[i].ID < skipped[j].ID })
		return selected, skipped
	case ApplyModeAll:
		return candidates, nil
	case ApplyModeOnce:
		return candidates[:1], nil
	default:
		return nil, nil
	}
}

// applyCandidates accepts fixes one by one. Accepted ops accumulate
// per file; a fix whose ops overlap an accepted one is skipped whole.
// All accepted ops are then applied in a single pass per file against
// the snapshot content.
func applyCandidates(fs *source.FileSet, selected []candidate, opts ApplyOptions) ([]AppliedFix, []SkippedFix, []FileChange, error) {
	accepted := make(map[source.FileID][]textedit.Op)
	applied := make([]AppliedFix, 0, len(selected))
	skipped := make([]SkippedFix, 0)
	baseDir := fs.BaseDir()

	for _, cand := range selected {
		fileID := cand.diag.Primary.File
		file := fs.Get(fileID)
		if file == nil {
			skipped = append(skipped, SkippedFix{
				ID: cand.fix.ID, Title: cand.fix.Title, Reason: "unknown file",
			})
			continue
		}

		ops := cand.fix.Edit.Ops()
		if reason := vetOps(file, accepted[fileID], ops); reason != "" {
			skipped = append(skipped, SkippedFix{
				ID: cand.fix.ID, Title: cand.fix.Title, Reason: reason,
			})
			continue
		}

		accepted[fileID] = append(accepted[fileID], ops...)
		applied = append(applied, AppliedFix{
			ID:          cand.fix.ID,
			Title:       cand.fix.Title,
			Code:        cand.diag.Code,
			Message:     cand.diag.Message,
			PrimaryPath: file.FormatPath("auto", baseDir),
			EditCount:   len(ops),
		})
	}

	if len(applied) == 0 {
		return applied, skipped, nil, nil
	}

	fileChanges := make([]FileChange, 0, len(accepted))
	for fileID, ops := range accepted {
		file := fs.Get(fileID)

		b := textedit.NewBuilder()
		for _, op := range ops {
			if op.IsInsert() {
				b.Insert(op.Span.File, op.Span.Start, op.Text)
			} else if op.Text != "" {
				b.Replace(op.Span, op.Text)
			} else {
				b.Delete(op.Span)
			}
		}
		newContent := []byte(b.Finish().Apply(string(file.Content)))

		if !opts.DryRun && file.Flags&source.FileVirtual == 0 {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(file.Path, newContent, mode); err != nil {
				return applied, skipped, fileChanges, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}

		fileChanges = append(fileChanges, FileChange{
			Path:       file.FormatPath("relative", baseDir),
			EditCount:  len(ops),
			NewContent: newContent,
		})
	}

	sort.SliceStable(fileChanges, func(i, j int) bool {
		return fileChanges[i].Path < fileChanges[j].Path
	})
	return applied, skipped, fileChanges, nil
}

// vetOps rejects ops that fall outside the file or overlap an edit
// accepted from an earlier fix.
func vetOps(file *source.File, existing []textedit.Op, ops []textedit.Op) string {
	for _, op := range ops {
		if op.Span.File != file.ID {
			return "edit targets a different file than the diagnostic"
		}
		if int(op.Span.End) > len(file.Content) || op.Span.Start > op.Span.End {
			return "edit span out of range"
		}
		for _, prev := range existing {
			if opsConflict(prev, op) {
				return fmt.Sprintf("conflicts with previously applied edits in %s", file.Path)
			}
		}
	}
	return ""
}

// opsConflict treats spans as half-open intervals. Two inserts at the
// same offset conflict; an insert strictly inside a delete conflicts;
// touching endpoints do not.
func opsConflict(a, b textedit.Op) bool {
	if a.IsInsert() && b.IsInsert() {
		return a.Span.Start == b.Span.Start
	}
	if a.IsInsert() {
		return b.Span.Start < a.Span.Start && a.Span.Start < b.Span.End
	}
	if b.IsInsert() {
		return a.Span.Start < b.Span.Start && b.Span.Start < a.Span.End
	}
	return a.Span.Start < b.Span.End && b.Span.Start < a.Span.End
}
