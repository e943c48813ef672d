package textedit

import (
	"fmt"
	"sort"
	"strings"

	"ruse/internal/source"
)

// Op is a single delete or insert over byte offsets. A delete covers
// [Span.Start, Span.End); an insert has an empty span anchored at its
// offset. Replace is spelled delete(span) + insert(span.Start, text).
type Op struct {
	Span source.Span
	Text string // empty for pure deletes
}

// IsInsert reports whether the op inserts text without removing any.
func (op Op) IsInsert() bool {
	return op.Span.Empty()
}

// TextEdit is an immutable, ordered set of disjoint operations with a
// deterministic pure Apply. Build one through a Builder.
type TextEdit struct {
	ops []Op
}

// Ops returns the operations sorted by start offset. Read-only.
func (e TextEdit) Ops() []Op {
	return e.ops
}

// Empty reports whether the edit does nothing.
func (e TextEdit) Empty() bool {
	return len(e.ops) == 0
}

// Span returns the cover of all operation spans.
func (e TextEdit) Span() source.Span {
	if len(e.ops) == 0 {
		return source.Span{}
	}
	sp := e.ops[0].Span
	for _, op := range e.ops[1:] {
		sp = sp.Cover(op.Span)
	}
	return sp
}

// Apply produces the edited text in one linear pass: untouched spans
// of src and replacement fragments are concatenated in ascending
// offset order. src is never mutated; offsets are interpreted against
// the exact text the edit was computed from.
func (e TextEdit) Apply(src string) string {
	if len(e.ops) == 0 {
		return src
	}
	var b strings.Builder
	b.Grow(len(src))
	last := uint32(0)
	for _, op := range e.ops {
		if int(op.Span.End) > len(src) || op.Span.Start < last {
			panic(fmt.Errorf("textedit: op %s out of bounds for source of %d bytes", op.Span, len(src)))
		}
		b.WriteString(src[last:op.Span.Start])
		b.WriteString(op.Text)
		last = op.Span.End
	}
	b.WriteString(src[last:])
	return b.String()
}

// Builder accumulates operations and compiles them into a TextEdit.
type Builder struct {
	ops []Op
}

// NewBuilder creates an empty edit builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Delete removes the text covered by span.
func (b *Builder) Delete(span source.Span) {
	b.ops = append(b.ops, Op{Span: span})
}

// Insert adds text at the given offset without removing anything.
func (b *Builder) Insert(file source.FileID, off uint32, text string) {
	b.ops = append(b.ops, Op{Span: source.Point(file, off), Text: text})
}

// Replace is the delete+insert idiom in one call.
func (b *Builder) Replace(span source.Span, text string) {
	b.Delete(span)
	b.Insert(span.File, span.Start, text)
}

// Finish consumes the builder and returns the immutable edit.
// Overlapping operations indicate a bug in the requesting check, not a
// property of the input, so Finish panics rather than merging or
// dropping anything.
func (b *Builder) Finish() TextEdit {
	ops := b.ops
	b.ops = nil
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].Span.Start != ops[j].Span.Start {
			return ops[i].Span.Start < ops[j].Span.Start
		}
		// insert-at-delete-start precedes the delete it pairs with
		return ops[i].Span.End < ops[j].Span.End
	})
	for i := 1; i < len(ops); i++ {
		prev, cur := ops[i-1], ops[i]
		if prev.Span.File != cur.Span.File {
			panic(fmt.Errorf("textedit: ops span different files: %s vs %s", prev.Span, cur.Span))
		}
		if cur.Span.Start < prev.Span.End {
			panic(fmt.Errorf("textedit: overlapping ops %s and %s", prev.Span, cur.Span))
		}
		if prev.IsInsert() && cur.IsInsert() && prev.Span.Start == cur.Span.Start {
			panic(fmt.Errorf("textedit: two inserts at offset %d", cur.Span.Start))
		}
	}
	return TextEdit{ops: ops}
}
