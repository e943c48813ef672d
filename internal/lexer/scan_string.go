package lexer

import (
	"ruse/internal/token"
)

// scanString scans a double-quoted string literal. Escapes are not
// interpreted; the token text is the raw source slice including the
// quotes. An unterminated literal is reported and the token still
// carries everything up to EOF or the line break.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.file.Text(sp)}
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(ErrUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.file.Text(sp)}
}
