package parser

import (
	"ruse/internal/syntax"
	"ruse/internal/token"
)

// Expr = Literal | RefExpr | ParenExpr | PathExpr | StructLit
//
// A path followed by '{' is a struct literal. This subset has no
// binary operators; initializer expressions in the wild here are
// literals, paths, and struct literals.
func (p *Parser) parseExpr() {
	switch p.lx.Peek().Kind {
	case token.IntLit, token.StringLit, token.KwTrue, token.KwFalse:
		p.tb.StartNode(syntax.LiteralExpr)
		p.advance()
		p.tb.FinishNode()

	case token.Amp:
		p.tb.StartNode(syntax.RefExpr)
		p.advance()
		p.parseExpr()
		p.tb.FinishNode()

	case token.LParen:
		p.tb.StartNode(syntax.ParenExpr)
		p.advance()
		p.parseExpr()
		p.expect(token.RParen, "expected ')'")
		p.tb.FinishNode()

	case token.Ident, token.KwSelf:
		if p.structLitAhead() {
			p.parseStructLit()
		} else {
			p.parsePathExpr()
		}

	default:
		p.tb.ErrorAt(p.errOffset(), "expected expression")
		p.tb.StartNode(syntax.ErrorNode)
		if !p.atEOF() && !p.at(token.Semicolon) && !p.at(token.RBrace) {
			p.advance()
		}
		p.tb.FinishNode()
	}
}

// structLitAhead looks past the leading path to decide whether a '{'
// opens a struct literal.
func (p *Parser) structLitAhead() bool {
	i := 0
	for {
		k := p.lx.PeekN(i).Kind
		if k != token.Ident && k != token.KwSelf {
			return false
		}
		i++
		switch p.lx.PeekN(i).Kind {
		case token.ColonColon:
			i++
		case token.LBrace:
			return true
		default:
			return false
		}
	}
}

// PathExpr = Ident ('::' Ident)*
func (p *Parser) parsePathExpr() {
	p.tb.StartNode(syntax.PathExpr)
	p.advance()
	for p.at(token.ColonColon) {
		p.advance()
		p.expect(token.Ident, "expected path segment")
	}
	p.tb.FinishNode()
}

// StructLit = PathExpr '{' StructLitFieldList '}'
func (p *Parser) parseStructLit() {
	p.tb.StartNode(syntax.StructLit)
	p.parsePathExpr()
	p.advance() // '{'
	p.tb.StartNode(syntax.StructLitFieldList)
	for !p.at(token.RBrace) && !p.atEOF() {
		p.parseStructLitField()
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.tb.FinishNode()
	p.expect(token.RBrace, "expected '}'")
	p.tb.FinishNode()
}

// StructLitField = Ident ':' Expr | Ident
func (p *Parser) parseStructLitField() {
	p.tb.StartNode(syntax.StructLitField)
	if !p.at(token.Ident) {
		p.tb.ErrorAt(p.errOffset(), "expected field name")
		if !p.atEOF() && !p.at(token.RBrace) {
			p.advance()
		}
		p.tb.FinishNode()
		return
	}
	p.advance() // field name
	if p.at(token.Colon) {
		p.advance()
		p.parseExpr()
	}
	p.tb.FinishNode()
}
