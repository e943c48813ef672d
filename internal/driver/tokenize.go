package driver

import (
	"ruse/internal/lexer"
	"ruse/internal/source"
	"ruse/internal/token"
)

// TokenizeResult carries the token stream and any lexical errors.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Errors  []LexError
}

// LexError is one error reported while scanning.
type LexError struct {
	Kind string
	Span source.Span
	Msg  string
}

type lexErrorSink struct {
	errs *[]LexError
}

func (s *lexErrorSink) Report(kind string, span source.Span, msg string) {
	*s.errs = append(*s.errs, LexError{Kind: kind, Span: span, Msg: msg})
}

// Tokenize scans the whole file, EOF token included.
func Tokenize(path string) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	file := fileSet.Get(fileID)

	res := &TokenizeResult{FileSet: fileSet, File: file}
	lx := lexer.New(file, lexer.Options{Reporter: &lexErrorSink{errs: &res.Errors}})
	for {
		tok := lx.Next()
		res.Tokens = append(res.Tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return res, nil
}
