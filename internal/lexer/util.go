package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneSelf = 0x80

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	// combining marks keep decomposed spellings like "é" in one token
	return isIdentStartRune(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func (lx *Lexer) peekRune() (rune, int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(lx.cursor.File.Content[lx.cursor.Off:])
}

func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	for i := 0; i < sz; i++ {
		lx.cursor.Bump()
	}
}
