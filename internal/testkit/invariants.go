// Package testkit holds shared assertions for parser and lint tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"ruse/internal/source"
	"ruse/internal/syntax"
)

// CheckTreeInvariants runs structural sanity checks on a parsed tree:
// 1) every span stays within the file content and the parent's span
// 2) sibling spans never overlap and appear in document order
// 3) child links are mutually consistent with parent links
// 4) a composite node's span is exactly the cover of its children
func CheckTreeInvariants(t *syntax.Tree, sf *source.File) error {
	if t == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	root := t.Root()
	if root == syntax.NilNode {
		return fmt.Errorf("tree has no root")
	}

	for n := range t.Descendants(root) {
		sp := t.Span(n)
		if sp.File != sf.ID {
			return fmt.Errorf("node %d span points to file %d, want %d", n, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > lenContent {
			return fmt.Errorf("node %d span %v out of bounds (content %d bytes)", n, sp, lenContent)
		}

		if p := t.Parent(n); p != syntax.NilNode {
			ps := t.Span(p)
			if sp.Start < ps.Start || sp.End > ps.End {
				return fmt.Errorf("node %d span %v escapes parent span %v", n, sp, ps)
			}
		}

		prevEnd := sp.Start
		first := true
		var cover source.Span
		haveChild := false
		for c := range t.Children(n) {
			if t.Parent(c) != n {
				return fmt.Errorf("child %d of node %d has parent %d", c, n, t.Parent(c))
			}
			cs := t.Span(c)
			if !first && cs.Start < prevEnd {
				return fmt.Errorf("siblings overlap under node %d: %v starts before %d", n, cs, prevEnd)
			}
			first = false
			prevEnd = cs.End
			if !haveChild {
				cover = cs
				haveChild = true
			} else {
				cover = cover.Cover(cs)
			}
		}
		if haveChild && !t.Kind(n).IsToken() {
			if cover.Start != sp.Start || cover.End != sp.End {
				return fmt.Errorf("node %d span %v is not the cover of its children %v", n, sp, cover)
			}
		}
	}
	return nil
}
