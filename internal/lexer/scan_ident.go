package lexer

import (
	"ruse/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it through
// LookupKeyword. Token.Text is exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		if sz > 0 {
			lx.bumpRune()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.report(ErrUnknownChar, sp, "unknown character "+lx.file.Text(sp))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
	}
	lx.bumpRune()

	for {
		// ASCII fast path
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		r2, sz2 := lx.peekRune()
		if sz2 < 2 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.file.Text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
