package fix

import (
	"ruse/internal/diag"
	"ruse/internal/source"
)

// Candidate describes one applicable fix, with the same synthesized
// ID that Apply would use for it.
type Candidate struct {
	ID      string
	Title   string
	Code    diag.Code
	Message string
	Primary source.Span
}

// Candidates lists the fixes found in diagnostics, in the order Apply
// would consider them.
func Candidates(diagnostics []diag.Diagnostic) []Candidate {
	cands := gatherCandidates(diagnostics)
	sortCandidates(cands)
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		out = append(out, Candidate{
			ID:      c.fix.ID,
			Title:   c.fix.Title,
			Code:    c.diag.Code,
			Message: c.diag.Message,
			Primary: c.diag.Primary,
		})
	}
	return out
}
