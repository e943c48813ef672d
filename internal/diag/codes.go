package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unmapped errors.
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadLifetime              Code = 1004

	// Syntax. Parser errors carry their own message text; the code
	// identifies the family.
	SynError Code = 2001

	// Lint checks.
	LintUnnecessaryBraces Code = 3001
	LintFieldShorthand    Code = 3002
	LintIdentNotNFC       Code = 3003
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadLifetime:              "Malformed lifetime",
	SynError:                    "Syntax error",
	LintUnnecessaryBraces:       "Unnecessary braces in use statement",
	LintFieldShorthand:          "Shorthand struct initialization",
	LintIdentNotNFC:             "Identifier is not NFC-normalized",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LNT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
