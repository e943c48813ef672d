package textedit

import (
	"testing"

	"ruse/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestApplyDelete(t *testing.T) {
	b := NewBuilder()
	b.Delete(span(3, 6))
	got := b.Finish().Apply("abcdefgh")
	if got != "abcgh" {
		t.Fatalf("expected %q, got %q", "abcgh", got)
	}
}

func TestApplyInsert(t *testing.T) {
	b := NewBuilder()
	b.Insert(0, 3, "XYZ")
	got := b.Finish().Apply("abcdef")
	if got != "abcXYZdef" {
		t.Fatalf("expected %q, got %q", "abcXYZdef", got)
	}
}

func TestApplyReplace(t *testing.T) {
	b := NewBuilder()
	b.Replace(span(4, 7), "DEF")
	got := b.Finish().Apply("abc defg")
	if got != "abc DEFg" {
		t.Fatalf("expected %q, got %q", "abc DEFg", got)
	}
}

func TestApplyMultipleOpsOutOfOrder(t *testing.T) {
	b := NewBuilder()
	b.Delete(span(6, 7))
	b.Replace(span(0, 3), "xyz")
	b.Insert(0, 9, "!")
	got := b.Finish().Apply("abc def gh")
	if got != "xyz de g!h" {
		t.Fatalf("expected %q, got %q", "xyz de g!h", got)
	}
}

func TestApplyEmptyEditReturnsSource(t *testing.T) {
	var e TextEdit
	if got := e.Apply("unchanged"); got != "unchanged" {
		t.Fatalf("expected source unchanged, got %q", got)
	}
	if !e.Empty() {
		t.Fatal("expected edit to be empty")
	}
}

func TestInsertAtStartAndEnd(t *testing.T) {
	b := NewBuilder()
	b.Insert(0, 0, ">> ")
	b.Insert(0, 3, " <<")
	got := b.Finish().Apply("abc")
	if got != ">> abc <<" {
		t.Fatalf("expected %q, got %q", ">> abc <<", got)
	}
}

func TestFinishPanicsOnOverlap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overlapping ops")
		}
	}()
	b := NewBuilder()
	b.Delete(span(0, 5))
	b.Delete(span(3, 8))
	b.Finish()
}

func TestFinishPanicsOnDuplicateInsert(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate inserts")
		}
	}()
	b := NewBuilder()
	b.Insert(0, 4, "x")
	b.Insert(0, 4, "y")
	b.Finish()
}

func TestFinishPanicsOnInsertInsideDelete(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on insert inside delete")
		}
	}()
	b := NewBuilder()
	b.Delete(span(2, 8))
	b.Insert(0, 5, "x")
	b.Finish()
}

func TestFinishPanicsOnCrossFileOps(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on cross-file ops")
		}
	}()
	b := NewBuilder()
	b.Delete(source.Span{File: 0, Start: 0, End: 1})
	b.Delete(source.Span{File: 1, Start: 2, End: 3})
	b.Finish()
}

func TestTouchingOpsDoNotOverlap(t *testing.T) {
	b := NewBuilder()
	b.Delete(span(0, 3))
	b.Delete(span(3, 5))
	got := b.Finish().Apply("abcdefg")
	if got != "fg" {
		t.Fatalf("expected %q, got %q", "fg", got)
	}
}

func TestSpanCoversAllOps(t *testing.T) {
	b := NewBuilder()
	b.Delete(span(2, 4))
	b.Insert(0, 10, "x")
	e := b.Finish()
	cover := e.Span()
	if cover.Start != 2 || cover.End != 10 {
		t.Fatalf("expected cover [2,10), got %v", cover)
	}
}

func TestApplyPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-bounds op")
		}
	}()
	b := NewBuilder()
	b.Delete(span(0, 100))
	b.Finish().Apply("short")
}
