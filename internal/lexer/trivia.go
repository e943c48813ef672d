package lexer

// skipTrivia consumes whitespace and comments. The tokens the lexer
// hands out carry exact spans, so trivia survives in the source text
// between token spans and never needs to be materialized.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			lx.cursor.Bump()

		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				lx.skipLineComment()
			case '*':
				lx.skipBlockComment()
			default:
				return
			}

		default:
			return
		}
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '/' && b1 == '*' {
			depth++
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if ok && b0 == '*' && b1 == '/' {
			depth--
			lx.cursor.Bump()
			lx.cursor.Bump()
			if depth == 0 {
				return
			}
			continue
		}
		lx.cursor.Bump()
	}
	lx.report(ErrUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated block comment")
}
