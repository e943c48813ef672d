package parser

import (
	"ruse/internal/lexer"
	"ruse/internal/source"
	"ruse/internal/syntax"
	"ruse/internal/token"
)

// Parser builds a syntax.Tree for one file. It never stops early:
// unexpected input is wrapped in error nodes and recorded as parse
// errors so the diagnostics layer always receives a full tree.
type Parser struct {
	lx       *lexer.Lexer
	tb       *syntax.Builder
	lastSpan source.Span
}

// ParseFile parses the whole file and returns the finished tree.
// Lexical errors are funneled into the same error list as syntax
// errors.
func ParseFile(file *source.File) *syntax.Tree {
	tb := syntax.NewBuilder(file)
	p := &Parser{
		lx: lexer.New(file, lexer.Options{Reporter: &lexErrors{tb: tb}}),
		tb: tb,
	}
	p.parseSourceFile()
	return tb.Finish()
}

// lexErrors adapts lexer reports onto the builder's error list.
type lexErrors struct {
	tb *syntax.Builder
}

func (r *lexErrors) Report(kind string, span source.Span, msg string) {
	r.tb.LexError(kind, span, msg)
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atEOF() bool {
	return p.at(token.EOF)
}

// advance consumes the next token into the current node.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
		p.tb.Token(tok)
	}
	return tok
}

// errOffset picks the best point for a diagnostic: the upcoming token,
// or the end of the last consumed one when the lexer is at EOF.
func (p *Parser) errOffset() uint32 {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return p.lastSpan.End
	}
	return peek.Span.Start
}

// expect consumes a token of kind k, or records a point error and
// leaves the token where it is.
func (p *Parser) expect(k token.Kind, msg string) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	p.tb.ErrorAt(p.errOffset(), msg)
	return false
}

// bumpError consumes one unexpected token into an error node.
func (p *Parser) bumpError(msg string) {
	p.tb.ErrorAt(p.errOffset(), msg)
	p.tb.StartNode(syntax.ErrorNode)
	if !p.atEOF() {
		p.advance()
	}
	p.tb.FinishNode()
}
