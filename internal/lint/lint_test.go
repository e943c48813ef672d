package lint

import (
	"strings"
	"testing"

	"ruse/internal/diag"
	"ruse/internal/parser"
	"ruse/internal/source"
	"ruse/internal/syntax"
)

func parseSrc(t *testing.T, src string) (*syntax.Tree, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(src))
	file := fs.Get(id)
	return parser.ParseFile(file), file
}

// checkApply asserts the check yields exactly one finding whose first
// fix rewrites src into want.
func checkApply(t *testing.T, check Check, src, want string) {
	t.Helper()
	tree, _ := parseSrc(t, src)
	ds := check(tree)
	if len(ds) != 1 {
		t.Fatalf("expected 1 diagnostic for %q, got %d", src, len(ds))
	}
	d := ds[0]
	if len(d.Fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(d.Fixes))
	}
	if got := d.Fixes[0].Edit.Apply(src); got != want {
		t.Fatalf("fix for %q:\nexpected %q\ngot      %q", src, want, got)
	}
}

func checkNotApplicable(t *testing.T, check Check, src string) {
	t.Helper()
	tree, _ := parseSrc(t, src)
	if ds := check(tree); len(ds) != 0 {
		t.Fatalf("expected no diagnostics for %q, got %d: %v", src, len(ds), ds[0].Message)
	}
}

func TestUseBracesSingleItem(t *testing.T) {
	checkApply(t, CheckUseBraces, "use {b};", "use b;")
	checkApply(t, CheckUseBraces, "use a::{c};", "use a::c;")
	checkApply(t, CheckUseBraces, "use a::{self};", "use a;")
	checkApply(t, CheckUseBraces, "use a::{c, d::{e}};", "use a::{c, d::e};")
}

func TestUseBracesBareSelfList(t *testing.T) {
	// without a path in front there is no '::' to strip
	checkApply(t, CheckUseBraces, "use {self};", "use self;")
}

func TestUseBracesNotApplicable(t *testing.T) {
	checkNotApplicable(t, CheckUseBraces, "use a::b;")
	checkNotApplicable(t, CheckUseBraces, "use a::{c, d};")
	checkNotApplicable(t, CheckUseBraces, "use a::*;")
}

func TestUseBracesDiagnosticShape(t *testing.T) {
	tree, _ := parseSrc(t, "use a::{c};")
	ds := CheckUseBraces(tree)
	if len(ds) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(ds))
	}
	d := ds[0]
	if d.Severity != diag.SevWeakWarning {
		t.Fatalf("expected weak warning, got %s", d.Severity)
	}
	if d.Code != diag.LintUnnecessaryBraces {
		t.Fatalf("unexpected code %s", d.Code.ID())
	}
	if d.Message != "Unnecessary braces in use statement" {
		t.Fatalf("unexpected message %q", d.Message)
	}
	if d.Fixes[0].Title != "Remove unnecessary braces" {
		t.Fatalf("unexpected fix title %q", d.Fixes[0].Title)
	}
	// the primary span covers the braces, not the whole decl
	if got := "use a::{c};"[d.Primary.Start:d.Primary.End]; got != "{c}" {
		t.Fatalf("expected primary span over braces, got %q", got)
	}
}

func TestFieldShorthand(t *testing.T) {
	checkApply(t, CheckFieldShorthand,
		"fn main() { A { a: a }; }",
		"fn main() { A { a }; }")
}

func TestFieldShorthandPerField(t *testing.T) {
	src := "fn main() { A { a: a, b: b }; }"
	tree, _ := parseSrc(t, src)
	ds := CheckFieldShorthand(tree)
	if len(ds) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(ds))
	}
	if got := ds[0].Fixes[0].Edit.Apply(src); got != "fn main() { A { a, b: b }; }" {
		t.Fatalf("first fix produced %q", got)
	}
	if got := ds[1].Fixes[0].Edit.Apply(src); got != "fn main() { A { a: a, b }; }" {
		t.Fatalf("second fix produced %q", got)
	}
}

func TestFieldShorthandNotApplicable(t *testing.T) {
	checkNotApplicable(t, CheckFieldShorthand, "fn main() { A { a: b }; }")
	checkNotApplicable(t, CheckFieldShorthand, "fn main() { A { a }; }")
	checkNotApplicable(t, CheckFieldShorthand, "fn main() { A { a: (a) }; }")
	checkNotApplicable(t, CheckFieldShorthand, "fn main() { A { a: 1 }; }")
}

func TestFieldShorthandMessage(t *testing.T) {
	tree, _ := parseSrc(t, "fn main() { A { a: a }; }")
	ds := CheckFieldShorthand(tree)
	if len(ds) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(ds))
	}
	if ds[0].Message != "Shorthand struct initialization" {
		t.Fatalf("unexpected message %q", ds[0].Message)
	}
	if ds[0].Fixes[0].Title != "Use struct shorthand initialization" {
		t.Fatalf("unexpected fix title %q", ds[0].Fixes[0].Title)
	}
}

func TestIdentNFC(t *testing.T) {
	// "e\u0301" is the decomposed spelling of "é"
	src := "fn main() { let caf\u0065\u0301 = 1; }"
	want := "fn main() { let caf\u00e9 = 1; }"
	checkApply(t, CheckIdentNFC, src, want)
}

func TestIdentNFCNotApplicable(t *testing.T) {
	checkNotApplicable(t, CheckIdentNFC, "fn main() { let caf\u00e9 = 1; }")
	checkNotApplicable(t, CheckIdentNFC, "fn main() { let plain = 1; }")
}

func TestDiagnosticsOrdering(t *testing.T) {
	// a parse error plus a lint finding: parse errors come first
	tree, _ := parseSrc(t, "use a::{b}")
	ds := Diagnostics(tree, Default())
	if len(ds) < 2 {
		t.Fatalf("expected parse error and lint finding, got %d", len(ds))
	}
	if ds[0].Severity != diag.SevError {
		t.Fatalf("expected error first, got %s", ds[0].Severity)
	}
	if !strings.HasPrefix(ds[0].Message, "Syntax Error: ") {
		t.Fatalf("expected syntax error prefix, got %q", ds[0].Message)
	}
	if ds[1].Code != diag.LintUnnecessaryBraces {
		t.Fatalf("expected lint finding second, got %s", ds[1].Code.ID())
	}
}

func TestSyntaxErrorPointSpanWidened(t *testing.T) {
	tree, _ := parseSrc(t, "use a")
	ds := Diagnostics(tree, nil)
	if len(ds) == 0 {
		t.Fatal("expected a syntax error")
	}
	for _, d := range ds {
		if d.Primary.Empty() {
			t.Fatalf("diagnostic span must not be empty: %v", d.Primary)
		}
		if len(d.Fixes) != 0 {
			t.Fatal("syntax errors carry no fixes")
		}
	}
}

func TestLexErrorGetsLexCode(t *testing.T) {
	tree, _ := parseSrc(t, "use a; @")
	ds := Diagnostics(tree, nil)
	found := false
	for _, d := range ds {
		if d.Code == diag.LexUnknownChar {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s diagnostic, got %v", diag.LexUnknownChar.ID(), ds)
	}
}

func TestChecksAreTotalOverBrokenTrees(t *testing.T) {
	tree, _ := parseSrc(t, "use {{{")
	for _, check := range Default() {
		_ = check(tree) // must not panic
	}
}

func TestSelectDisablesByName(t *testing.T) {
	checks := Select([]string{"field-shorthand", "ident-nfc"})
	if len(checks) != 1 {
		t.Fatalf("expected 1 remaining check, got %d", len(checks))
	}
	tree, _ := parseSrc(t, "fn main() { A { a: a }; }")
	if ds := Diagnostics(tree, checks); len(ds) != 0 {
		t.Fatalf("disabled check still reported: %v", ds)
	}
}
