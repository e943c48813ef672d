package lexer

import (
	"testing"

	"ruse/internal/source"
	"ruse/internal/token"
)

type reportRec struct {
	kind string
	msg  string
}

type recorder struct {
	reports []reportRec
}

func (r *recorder) Report(kind string, span source.Span, msg string) {
	r.reports = append(r.reports, reportRec{kind: kind, msg: msg})
}

func lexAll(t *testing.T, src string) ([]token.Token, *recorder) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(src))
	rec := &recorder{}
	return Tokenize(fs.Get(id), Options{Reporter: rec}), rec
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, got, want []token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTokenizeUseDecl(t *testing.T) {
	tokens, rec := lexAll(t, "use a::{self};")
	expectKinds(t, kinds(tokens), []token.Kind{
		token.KwUse, token.Ident, token.ColonColon,
		token.LBrace, token.KwSelf, token.RBrace,
		token.Semicolon, token.EOF,
	})
	if len(rec.reports) != 0 {
		t.Fatalf("unexpected reports: %v", rec.reports)
	}
}

func TestColonVsColonColon(t *testing.T) {
	tokens, _ := lexAll(t, "a: b::c")
	expectKinds(t, kinds(tokens), []token.Kind{
		token.Ident, token.Colon, token.Ident,
		token.ColonColon, token.Ident, token.EOF,
	})
}

func TestKeywordsAndIdents(t *testing.T) {
	tokens, _ := lexAll(t, "use self struct fn let true false selfish")
	expectKinds(t, kinds(tokens), []token.Kind{
		token.KwUse, token.KwSelf, token.KwStruct, token.KwFn,
		token.KwLet, token.KwTrue, token.KwFalse, token.Ident, token.EOF,
	})
	if last := tokens[7]; last.Text != "selfish" {
		t.Fatalf("expected ident text %q, got %q", "selfish", last.Text)
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	tokens, rec := lexAll(t, "// line\nuse /* block /* nested */ */ a;")
	expectKinds(t, kinds(tokens), []token.Kind{
		token.KwUse, token.Ident, token.Semicolon, token.EOF,
	})
	if len(rec.reports) != 0 {
		t.Fatalf("unexpected reports: %v", rec.reports)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, rec := lexAll(t, "use a; /* never closed")
	if len(rec.reports) != 1 || rec.reports[0].kind != ErrUnterminatedComment {
		t.Fatalf("expected one %s report, got %v", ErrUnterminatedComment, rec.reports)
	}
}

func TestStringLiteralWithEscapes(t *testing.T) {
	tokens, rec := lexAll(t, `let s = "a\"b";`)
	expectKinds(t, kinds(tokens), []token.Kind{
		token.KwLet, token.Ident, token.Eq, token.StringLit,
		token.Semicolon, token.EOF,
	})
	if tokens[3].Text != `"a\"b"` {
		t.Fatalf("unexpected string text %q", tokens[3].Text)
	}
	if len(rec.reports) != 0 {
		t.Fatalf("unexpected reports: %v", rec.reports)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, rec := lexAll(t, "let s = \"oops\nlet x = 1;")
	if len(rec.reports) != 1 || rec.reports[0].kind != ErrUnterminatedString {
		t.Fatalf("expected one %s report, got %v", ErrUnterminatedString, rec.reports)
	}
}

func TestLifetimeMarker(t *testing.T) {
	tokens, _ := lexAll(t, "&'static str")
	expectKinds(t, kinds(tokens), []token.Kind{
		token.Amp, token.Lifetime, token.Ident, token.EOF,
	})
	if tokens[1].Text != "'static" {
		t.Fatalf("unexpected lifetime text %q", tokens[1].Text)
	}
}

func TestUnknownCharReported(t *testing.T) {
	tokens, rec := lexAll(t, "use a @ b;")
	if len(rec.reports) != 1 || rec.reports[0].kind != ErrUnknownChar {
		t.Fatalf("expected one %s report, got %v", ErrUnknownChar, rec.reports)
	}
	expectKinds(t, kinds(tokens), []token.Kind{
		token.KwUse, token.Ident, token.Invalid, token.Ident,
		token.Semicolon, token.EOF,
	})
}

func TestUnicodeIdent(t *testing.T) {
	tokens, rec := lexAll(t, "let значение = 1;")
	expectKinds(t, kinds(tokens), []token.Kind{
		token.KwLet, token.Ident, token.Eq, token.IntLit,
		token.Semicolon, token.EOF,
	})
	if tokens[1].Text != "значение" {
		t.Fatalf("unexpected ident text %q", tokens[1].Text)
	}
	if len(rec.reports) != 0 {
		t.Fatalf("unexpected reports: %v", rec.reports)
	}
}

func TestNumberWithUnderscores(t *testing.T) {
	tokens, _ := lexAll(t, "let n = 1_000_000;")
	if tokens[3].Kind != token.IntLit || tokens[3].Text != "1_000_000" {
		t.Fatalf("unexpected number token %v %q", tokens[3].Kind, tokens[3].Text)
	}
}

func TestPeekNDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte("a::b"))
	lx := New(fs.Get(id), Options{})

	if k := lx.PeekN(2).Kind; k != token.Ident {
		t.Fatalf("expected Ident at lookahead 2, got %s", k)
	}
	if k := lx.PeekN(0).Kind; k != token.Ident {
		t.Fatalf("expected Ident at lookahead 0, got %s", k)
	}
	if k := lx.Next().Kind; k != token.Ident {
		t.Fatalf("expected first Next to be Ident, got %s", k)
	}
	if k := lx.Next().Kind; k != token.ColonColon {
		t.Fatalf("expected second Next to be ColonColon, got %s", k)
	}
}

func TestEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(""))
	lx := New(fs.Get(id), Options{})
	for range 3 {
		if k := lx.Next().Kind; k != token.EOF {
			t.Fatalf("expected EOF, got %s", k)
		}
	}
}
