package lint

import (
	"golang.org/x/text/unicode/norm"

	"ruse/internal/diag"
	"ruse/internal/syntax"
	"ruse/internal/textedit"
)

// CheckIdentNFC flags identifiers whose spelling is not in Unicode
// normalization form C. Two visually identical identifiers with
// different code point sequences will not resolve to each other, so
// the fix rewrites the identifier to its NFC form.
func CheckIdentNFC(tree *syntax.Tree) []diag.Diagnostic {
	var out []diag.Diagnostic
	for id := range tree.DescendantsOfKind(tree.Root(), syntax.TokIdent) {
		text := tree.Text(id)
		if norm.NFC.IsNormalString(text) {
			continue
		}
		span := tree.Span(id)
		b := textedit.NewBuilder()
		b.Replace(span, norm.NFC.String(text))
		out = append(out, diag.New(diag.SevWarning, diag.LintIdentNotNFC,
			span, "Identifier is not NFC-normalized").
			WithFix("Normalize identifier to NFC", b.Finish()))
	}
	return out
}
