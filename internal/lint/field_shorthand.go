package lint

import (
	"ruse/internal/diag"
	"ruse/internal/syntax"
	"ruse/internal/textedit"
)

// CheckFieldShorthand flags struct literal fields spelled `name: name`
// and offers the shorthand `name`. The comparison is textual, so
// `a: a` matches while `a: (a)` does not.
func CheckFieldShorthand(tree *syntax.Tree) []diag.Diagnostic {
	var out []diag.Diagnostic
	for lit := range tree.DescendantsOfKind(tree.Root(), syntax.StructLit) {
		for _, field := range syntax.StructLitFields(tree, lit) {
			name := syntax.FieldName(tree, field)
			expr := syntax.FieldExpr(tree, field)
			if name == syntax.NilNode || expr == syntax.NilNode {
				continue
			}
			nameText := tree.Text(name)
			if nameText != tree.Text(expr) {
				continue
			}
			span := tree.Span(field)
			b := textedit.NewBuilder()
			b.Replace(span, nameText)
			out = append(out, diag.New(diag.SevWeakWarning, diag.LintFieldShorthand,
				span, "Shorthand struct initialization").
				WithFix("Use struct shorthand initialization", b.Finish()))
		}
	}
	return out
}
