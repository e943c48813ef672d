package parser

import (
	"ruse/internal/syntax"
	"ruse/internal/token"
)

// UseDecl = 'use' UseTree ';'
func (p *Parser) parseUseDecl() {
	p.tb.StartNode(syntax.UseDecl)
	p.advance() // 'use'
	p.parseUseTree()
	p.expect(token.Semicolon, "expected ';'")
	p.tb.FinishNode()
}

// UseTree = Path ('::' UseTreeList)? | UseTreeList
//
// The token leaves matter here: the separator '::' is a direct child
// of the UseTree, so the brace-removal fix can reach it as the
// UseTreeList's previous sibling.
func (p *Parser) parseUseTree() {
	p.tb.StartNode(syntax.UseTree)
	switch {
	case p.at(token.LBrace):
		p.parseUseTreeList()
	case p.at(token.Ident) || p.at(token.KwSelf):
		p.parsePath()
		if p.at(token.ColonColon) {
			p.advance()
			if p.at(token.LBrace) {
				p.parseUseTreeList()
			} else if p.at(token.Star) {
				p.advance()
			} else {
				p.tb.ErrorAt(p.errOffset(), "expected '{' or '*' after '::'")
			}
		}
	default:
		p.tb.ErrorAt(p.errOffset(), "expected import path")
	}
	p.tb.FinishNode()
}

// UseTreeList = '{' (UseTree (',' UseTree)* ','?)? '}'
func (p *Parser) parseUseTreeList() {
	p.tb.StartNode(syntax.UseTreeList)
	p.advance() // '{'
	for !p.at(token.RBrace) && !p.atEOF() {
		p.parseUseTree()
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace, "expected '}'")
	p.tb.FinishNode()
}

// Path = PathSegment ('::' PathSegment)*
//
// A '::' that introduces a brace group or glob belongs to the
// enclosing UseTree, not to the Path, so lookahead decides whether to
// keep extending the path.
func (p *Parser) parsePath() {
	p.tb.StartNode(syntax.Path)
	p.parsePathSegment()
	for p.at(token.ColonColon) && p.pathContinues() {
		p.advance() // '::'
		p.parsePathSegment()
	}
	p.tb.FinishNode()
}

// pathContinues reports whether the '::' at hand is followed by a
// plain segment (stops the path before '::{' and '::*').
func (p *Parser) pathContinues() bool {
	next := p.lx.PeekN(1).Kind
	return next == token.Ident || next == token.KwSelf
}

func (p *Parser) parsePathSegment() {
	p.tb.StartNode(syntax.PathSegment)
	if p.at(token.Ident) || p.at(token.KwSelf) {
		p.advance()
	} else {
		p.tb.ErrorAt(p.errOffset(), "expected path segment")
	}
	p.tb.FinishNode()
}
