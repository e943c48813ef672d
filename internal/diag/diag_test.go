package diag

import (
	"testing"

	"ruse/internal/source"
	"ruse/internal/textedit"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestCodeIDs(t *testing.T) {
	cases := []struct {
		code Code
		id   string
	}{
		{LexUnknownChar, "LEX1001"},
		{LexUnterminatedString, "LEX1002"},
		{LexUnterminatedBlockComment, "LEX1003"},
		{LexBadLifetime, "LEX1004"},
		{SynError, "SYN2001"},
		{LintUnnecessaryBraces, "LNT3001"},
		{LintFieldShorthand, "LNT3002"},
		{LintIdentNotNFC, "LNT3003"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.id {
			t.Errorf("code %d: expected %s, got %s", tc.code, tc.id, got)
		}
	}
}

func TestCodeTitleFallsBack(t *testing.T) {
	if got := Code(1999).Title(); got != "Unknown error" {
		t.Fatalf("expected fallback title, got %q", got)
	}
	if got := LintIdentNotNFC.Title(); got != "Identifier is not NFC-normalized" {
		t.Fatalf("unexpected title %q", got)
	}
}

func TestSeverityOrder(t *testing.T) {
	if !(SevWeakWarning < SevWarning && SevWarning < SevError) {
		t.Fatal("severity constants must order weak < warning < error")
	}
	if SevError.String() != "ERROR" || SevWeakWarning.String() != "WEAK_WARNING" {
		t.Fatalf("unexpected severity strings %q, %q", SevError, SevWeakWarning)
	}
}

func TestBagCapAndDropped(t *testing.T) {
	b := NewBag(2)
	for i := range 5 {
		b.Add(New(SevWarning, LintFieldShorthand, span(0, uint32(i), uint32(i+1)), "w"))
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 kept, got %d", b.Len())
	}
	if b.Dropped() != 3 {
		t.Fatalf("expected 3 dropped, got %d", b.Dropped())
	}
}

func TestBagUnboundedByDefault(t *testing.T) {
	b := NewBag(0)
	for i := range 100 {
		b.Add(New(SevWarning, LintFieldShorthand, span(0, uint32(i), uint32(i+1)), "w"))
	}
	if b.Len() != 100 || b.Dropped() != 0 {
		t.Fatalf("expected all kept, got len=%d dropped=%d", b.Len(), b.Dropped())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevWeakWarning, LintUnnecessaryBraces, span(0, 0, 1), "weak"))
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("weak warnings count as neither errors nor warnings")
	}
	b.Add(New(SevWarning, LintIdentNotNFC, span(0, 1, 2), "warn"))
	if b.HasErrors() {
		t.Fatal("no errors yet")
	}
	if !b.HasWarnings() {
		t.Fatal("expected warnings")
	}
	b.Add(NewError(SynError, span(0, 2, 3), "boom"))
	if !b.HasErrors() {
		t.Fatal("expected errors")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevWarning, LintIdentNotNFC, span(1, 0, 1), "other file"))
	b.Add(New(SevWeakWarning, LintUnnecessaryBraces, span(0, 5, 8), "late weak"))
	b.Add(NewError(SynError, span(0, 5, 6), "late error"))
	b.Add(New(SevWarning, LintFieldShorthand, span(0, 0, 3), "early"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "early" {
		t.Fatalf("expected earliest offset first, got %q", items[0].Message)
	}
	// same offset: higher severity wins
	if items[1].Message != "late error" || items[2].Message != "late weak" {
		t.Fatalf("unexpected order at shared offset: %q, %q", items[1].Message, items[2].Message)
	}
	if items[3].Primary.File != 1 {
		t.Fatal("expected the other file last")
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(2)
	a.Add(New(SevWarning, LintFieldShorthand, span(0, 0, 1), "a1"))

	other := NewBag(1)
	other.Add(New(SevWarning, LintFieldShorthand, span(0, 1, 2), "b1"))
	other.Add(New(SevWarning, LintFieldShorthand, span(0, 2, 3), "b2"))

	a.Merge(other)
	if a.Len() != 2 {
		t.Fatalf("expected 2 after merge, got %d", a.Len())
	}
	if a.Dropped() != 1 {
		t.Fatalf("expected other's dropped count carried over, got %d", a.Dropped())
	}
}

func TestWithFixAppends(t *testing.T) {
	tb := textedit.NewBuilder()
	tb.Delete(span(0, 0, 1))
	d := New(SevWeakWarning, LintUnnecessaryBraces, span(0, 0, 3), "m").
		WithFix("remove", tb.Finish())
	if len(d.Fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(d.Fixes))
	}
	if d.Fixes[0].Title != "remove" || d.Fixes[0].Edit.Empty() {
		t.Fatalf("unexpected fix %+v", d.Fixes[0])
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("use a::{b};\n"))
	d := New(SevWeakWarning, LintUnnecessaryBraces,
		span(id, 7, 10), "Unnecessary braces in use statement")

	want := "test.rs:1:8: WEAK_WARNING LNT3001 Unnecessary braces in use statement"
	if got := FormatShort(fs, d); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatShortUnknownFile(t *testing.T) {
	fs := source.NewFileSet()
	d := NewError(SynError, span(42, 0, 1), "oops")
	if got := FormatShort(fs, d); got != "<unknown file>: ERROR SYN2001 oops" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFormatShortAll(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("x\ny\n"))
	ds := []Diagnostic{
		NewError(SynError, span(id, 0, 1), "first"),
		NewError(SynError, span(id, 2, 3), "second"),
	}
	got := FormatShortAll(fs, ds)
	want := "test.rs:1:1: ERROR SYN2001 first\ntest.rs:2:1: ERROR SYN2001 second\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if FormatShortAll(fs, nil) != "" {
		t.Fatal("expected empty output for no diagnostics")
	}
}
