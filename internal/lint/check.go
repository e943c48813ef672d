// Package lint turns a parsed tree into diagnostics. Checks are pure
// functions over the tree; the aggregator prepends the tree's own
// parse errors and runs every registered check in order.
package lint

import (
	"ruse/internal/diag"
	"ruse/internal/lexer"
	"ruse/internal/syntax"
)

// Check inspects a tree and reports zero or more findings. A check
// must be total: any tree, including one full of error nodes, is
// valid input.
type Check func(tree *syntax.Tree) []diag.Diagnostic

// Default returns the built-in checks in their stable reporting order.
func Default() []Check {
	return Select(nil)
}

// Diagnostics runs the given checks over the tree. Parse errors come
// first, then each check's findings in registration order. Duplicates
// are kept; downstream consumers decide about dedup and sorting.
func Diagnostics(tree *syntax.Tree, checks []Check) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, pe := range tree.Errors() {
		span := pe.Span
		if span.Empty() {
			// point locations render as a 1-byte caret
			span.End = span.Start + 1
		}
		out = append(out, diag.NewError(codeForParseError(pe.Kind), span, "Syntax Error: "+pe.Msg))
	}
	for _, check := range checks {
		out = append(out, check(tree)...)
	}
	return out
}

func codeForParseError(kind string) diag.Code {
	switch kind {
	case lexer.ErrUnknownChar:
		return diag.LexUnknownChar
	case lexer.ErrUnterminatedString:
		return diag.LexUnterminatedString
	case lexer.ErrUnterminatedComment:
		return diag.LexUnterminatedBlockComment
	case lexer.ErrUnterminatedLifetime:
		return diag.LexBadLifetime
	default:
		return diag.SynError
	}
}
