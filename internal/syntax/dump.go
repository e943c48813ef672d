package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented debug rendering of the tree: composite nodes
// as KIND@start..end, token leaves with their source text appended.
func Dump(w io.Writer, t *Tree) {
	var walk func(id NodeID, depth int)
	walk = func(id NodeID, depth int) {
		indent := strings.Repeat("  ", depth)
		sp := t.Span(id)
		kind := t.Kind(id)
		if kind.IsToken() {
			fmt.Fprintf(w, "%s%s@%d..%d %q\n", indent, kind, sp.Start, sp.End, t.Text(id))
		} else {
			fmt.Fprintf(w, "%s%s@%d..%d\n", indent, kind, sp.Start, sp.End)
		}
		for c := t.FirstChild(id); c != NilNode; c = t.NextSibling(c) {
			walk(c, depth+1)
		}
	}
	if t.Root() != NilNode {
		walk(t.Root(), 0)
	}
	for _, e := range t.Errors() {
		fmt.Fprintf(w, "error@%d..%d: %s\n", e.Span.Start, e.Span.End, e.Msg)
	}
}
