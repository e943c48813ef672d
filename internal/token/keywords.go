package token

var keywords = map[string]Kind{
	"use":    KwUse,
	"self":   KwSelf,
	"struct": KwStruct,
	"fn":     KwFn,
	"let":    KwLet,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
