package lexer

import (
	"ruse/internal/token"
)

// scanNumber scans a decimal integer literal. Underscore separators
// are allowed between digits.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if !isDec(b) && b != '_' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: lx.file.Text(sp)}
}
