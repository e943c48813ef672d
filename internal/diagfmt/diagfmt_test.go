package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ruse/internal/diag"
	"ruse/internal/lint"
	"ruse/internal/parser"
	"ruse/internal/source"
)

func diagnoseVirtual(t *testing.T, src string) (*source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(src))
	tree := parser.ParseFile(fs.Get(id))
	bag := diag.NewBag(0)
	bag.AddAll(lint.Diagnostics(tree, lint.Default()))
	return fs, bag
}

func TestShort(t *testing.T) {
	fs, bag := diagnoseVirtual(t, "use a::{b};\n")
	var buf bytes.Buffer
	if err := Short(&buf, bag, fs); err != nil {
		t.Fatal(err)
	}
	want := "test.rs:1:8: WEAK_WARNING LNT3001 Unnecessary braces in use statement\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestShortReportsDropped(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("x\n"))
	bag := diag.NewBag(1)
	for range 3 {
		bag.Add(diag.NewError(diag.SynError, source.Span{File: id, Start: 0, End: 1}, "boom"))
	}

	var buf bytes.Buffer
	if err := Short(&buf, bag, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "and 2 more diagnostics not shown") {
		t.Fatalf("expected dropped footer, got %q", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	fs, bag := diagnoseVirtual(t, "use a::{b};\n")
	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeFixes: true})
	if err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "WEAK_WARNING" || d.Code != "LNT3001" {
		t.Fatalf("unexpected severity/code: %s %s", d.Severity, d.Code)
	}
	if d.Location.File != "test.rs" || d.Location.StartLine != 1 || d.Location.StartCol != 8 {
		t.Fatalf("unexpected location %+v", d.Location)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Title != "Remove unnecessary braces" {
		t.Fatalf("unexpected fixes %+v", d.Fixes)
	}
	if len(d.Fixes[0].Edits) == 0 {
		t.Fatal("expected the fix to carry edits")
	}
}

func TestJSONOmitsFixesByDefault(t *testing.T) {
	fs, bag := diagnoseVirtual(t, "use a::{b};\n")
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if len(out.Diagnostics[0].Fixes) != 0 {
		t.Fatal("fixes must be opt-in")
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Fatal("positions must be opt-in")
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs, bag := diagnoseVirtual(t, "use a::{b};\nuse c::{d};\nuse e::{f};\n")
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("expected truncation to 2, got count=%d len=%d", out.Count, len(out.Diagnostics))
	}
}

func TestJSONEmptyBag(t *testing.T) {
	fs, bag := diagnoseVirtual(t, "use a::b;\n")
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 0 {
		t.Fatalf("expected empty document, got %+v", out)
	}
}

func TestPrettyPlain(t *testing.T) {
	fs, bag := diagnoseVirtual(t, "use a::{b};\n")
	var buf bytes.Buffer
	err := Pretty(&buf, bag, fs, PrettyOpts{Context: 0, ShowFixes: true})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "WEAK_WARNING[LNT3001] Unnecessary braces in use statement") {
		t.Fatalf("missing header line in %q", out)
	}
	if !strings.Contains(out, "test.rs:1:8") {
		t.Fatalf("missing location in %q", out)
	}
	if !strings.Contains(out, "use a::{b};") {
		t.Fatalf("missing source line in %q", out)
	}
	if !strings.Contains(out, "Remove unnecessary braces") {
		t.Fatalf("missing fix line in %q", out)
	}
}

func TestPrettyCaretUnderSpan(t *testing.T) {
	fs, bag := diagnoseVirtual(t, "use a::{b};\n")
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	caret := -1
	for _, line := range strings.Split(buf.String(), "\n") {
		if i := strings.Index(line, "^^^"); i >= 0 {
			caret = i
		}
	}
	if caret < 0 {
		t.Fatalf("no caret line in %q", buf.String())
	}
}
