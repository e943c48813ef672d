package lexer

import (
	"ruse/internal/source"
)

// Error kinds passed to the Reporter. The lexer deliberately does not
// depend on the diag package; the caller maps kinds to codes.
const (
	ErrUnknownChar          = "unknown_char"
	ErrUnterminatedString   = "unterminated_string"
	ErrUnterminatedComment  = "unterminated_block_comment"
	ErrUnterminatedLifetime = "empty_lifetime"
)

// Reporter receives lexical errors. A nil reporter drops them; lexing
// continues either way.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
