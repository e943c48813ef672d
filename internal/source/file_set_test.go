package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("use a;\n"))
	f := fs.Get(id)
	if f == nil {
		t.Fatal("expected file for issued id")
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatal("expected FileVirtual flag")
	}
	if string(f.Content) != "use a;\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if fs.Get(FileID(99)) != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestReAddingPathPointsAtLatest(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("test.rs", []byte("v1"))
	second := fs.AddVirtual("test.rs", []byte("v2"))
	if first == second {
		t.Fatal("expected distinct ids per version")
	}
	latest, ok := fs.GetLatest("test.rs")
	if !ok || latest != second {
		t.Fatalf("expected latest id %d, got %d (ok=%v)", second, latest, ok)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("ab\ncd\n\nef"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},  // 'a'
		{1, 1, 2},  // 'b'
		{2, 1, 3},  // the newline belongs to line 1
		{3, 2, 1},  // 'c'
		{4, 2, 2},  // 'd'
		{6, 3, 1},  // empty line
		{7, 4, 1},  // 'e'
		{8, 4, 2},  // 'f'
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start.Line != tc.line || start.Col != tc.col {
			t.Errorf("offset %d: expected %d:%d, got %d:%d",
				tc.off, tc.line, tc.col, start.Line, start.Col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Fatalf("line 1: got %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Fatalf("line 2: got %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("line 3: got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("line 4: expected empty, got %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Fatalf("line 0: expected empty, got %q", got)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.rs")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("use a;\r\nuse b;\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "use a;\nuse b;\n" {
		t.Fatalf("unexpected normalized content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Fatal("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatal("expected FileNormalizedCRLF flag")
	}
}

func TestFileText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("use a::b;"))
	f := fs.Get(id)

	if got := f.Text(Span{File: id, Start: 4, End: 8}); got != "a::b" {
		t.Fatalf("expected %q, got %q", "a::b", got)
	}
	if got := f.Text(Span{File: id, Start: 4, End: 100}); got != "" {
		t.Fatalf("expected empty for out-of-range span, got %q", got)
	}
}

func TestSpanCoverAndContains(t *testing.T) {
	a := Span{File: 0, Start: 2, End: 5}
	b := Span{File: 0, Start: 7, End: 9}
	cover := a.Cover(b)
	if cover.Start != 2 || cover.End != 9 {
		t.Fatalf("expected cover [2,9), got %v", cover)
	}
	if !cover.Contains(a.Start) || !cover.Contains(b.End-1) {
		t.Fatal("expected cover to contain both endpoints")
	}
	if a.Contains(b.Start) {
		t.Fatal("offset outside the span must not be contained")
	}
	if cover.Contains(cover.End) {
		t.Fatal("End is exclusive")
	}
}
