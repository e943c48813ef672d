package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwSelf represents the 'self' keyword.
	KwSelf // self
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents an integer literal.
	IntLit
	// StringLit represents a string literal.
	StringLit

	// ColonColon represents '::'.
	ColonColon // ::
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Eq represents '='.
	Eq // =
	// Star represents '*'.
	Star // *
	// Amp represents '&'.
	Amp // &
	// Lifetime represents a lifetime marker such as 'static.
	Lifetime
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	EOF:        "eof",
	Ident:      "ident",
	KwUse:      "use",
	KwSelf:     "self",
	KwStruct:   "struct",
	KwFn:       "fn",
	KwLet:      "let",
	KwTrue:     "true",
	KwFalse:    "false",
	IntLit:     "int",
	StringLit:  "string",
	ColonColon: "::",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	Eq:         "=",
	Star:       "*",
	Amp:        "&",
	Lifetime:   "lifetime",
	LBrace:     "{",
	RBrace:     "}",
	LParen:     "(",
	RParen:     ")",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
