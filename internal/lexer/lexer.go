package lexer

import (
	"ruse/internal/source"
	"ruse/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   []token.Token // lookahead buffer, oldest first
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it always
// returns EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		lx.look = lx.look[1:]
		return tok
	}
	return lx.scan()
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanLifetime()
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	return lx.PeekN(0)
}

// PeekN returns the n-th upcoming token (0 = next) without consuming
// anything.
func (lx *Lexer) PeekN(n int) token.Token {
	for len(lx.look) <= n {
		lx.look = append(lx.look, lx.scan())
	}
	return lx.look[n]
}

// Tokenize drains the lexer into a slice ending with the EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, 64)
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case ':':
		if lx.cursor.Peek() == ':' {
			lx.cursor.Bump()
			kind = token.ColonColon
		} else {
			kind = token.Colon
		}
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '=':
		kind = token.Eq
	case '*':
		kind = token.Star
	case '&':
		kind = token.Amp
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.file.Text(sp)
	if kind == token.Invalid {
		lx.report(ErrUnknownChar, sp, "unknown character "+text)
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanLifetime handles 'ident markers (as in &'static str). A bare
// quote with no identifier after it is reported and yields Invalid.
func (lx *Lexer) scanLifetime() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\''
	if !isIdentStartByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.report(ErrUnterminatedLifetime, sp, "expected identifier after '")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Lifetime, Span: sp, Text: lx.file.Text(sp)}
}
