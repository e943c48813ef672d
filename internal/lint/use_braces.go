package lint

import (
	"ruse/internal/diag"
	"ruse/internal/syntax"
	"ruse/internal/textedit"
)

// CheckUseBraces flags use-tree lists that wrap a single item, as in
// `use a::{b};`. The fix unwraps the item in place. `use a::{self};`
// gets the stronger rewrite to `use a;`, which also removes the `::`
// separator in front of the braces.
func CheckUseBraces(tree *syntax.Tree) []diag.Diagnostic {
	var out []diag.Diagnostic
	for list := range tree.DescendantsOfKind(tree.Root(), syntax.UseTreeList) {
		trees := syntax.UseTrees(tree, list)
		if len(trees) != 1 {
			continue
		}
		span := tree.Span(list)
		edit, ok := selfTreeEdit(tree, trees[0], list)
		if !ok {
			b := textedit.NewBuilder()
			b.Replace(span, tree.Text(trees[0]))
			edit = b.Finish()
		}
		out = append(out, diag.New(diag.SevWeakWarning, diag.LintUnnecessaryBraces,
			span, "Unnecessary braces in use statement").
			WithFix("Remove unnecessary braces", edit))
	}
	return out
}

// selfTreeEdit handles the `{self}` case: when the single tree is a
// bare self-reference and the list has a `::` in front, the whole
// `::{self}` tail goes away. Returns ok=false when the general
// unwrapping applies instead.
func selfTreeEdit(tree *syntax.Tree, single, list syntax.NodeID) (textedit.TextEdit, bool) {
	if !syntax.IsSelfTree(tree, single) {
		return textedit.TextEdit{}, false
	}
	sep := tree.PrevSibling(list)
	if sep == syntax.NilNode {
		return textedit.TextEdit{}, false
	}
	b := textedit.NewBuilder()
	b.Delete(tree.Span(sep).Cover(tree.Span(list)))
	return b.Finish(), true
}
