package parser

import (
	"ruse/internal/syntax"
	"ruse/internal/token"
)

// Block = '{' Stmt* '}'
func (p *Parser) parseBlock() {
	p.tb.StartNode(syntax.Block)
	p.advance() // '{'
	for !p.at(token.RBrace) && !p.atEOF() {
		p.parseStmt()
	}
	p.expect(token.RBrace, "expected '}'")
	p.tb.FinishNode()
}

// Stmt = LetStmt | ExprStmt
//
// The trailing ';' is optional on expression statements so that a
// block may end with a bare tail expression.
func (p *Parser) parseStmt() {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		p.parseLetStmt()
	case token.Ident, token.KwSelf, token.IntLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.Amp, token.LParen:
		p.tb.StartNode(syntax.ExprStmt)
		p.parseExpr()
		if p.at(token.Semicolon) {
			p.advance()
		}
		p.tb.FinishNode()
	default:
		p.bumpError("expected statement")
	}
}

// LetStmt = 'let' Ident (':' Type)? '=' Expr ';'
func (p *Parser) parseLetStmt() {
	p.tb.StartNode(syntax.LetStmt)
	p.advance() // 'let'
	p.expect(token.Ident, "expected binding name")
	if p.at(token.Colon) {
		p.advance()
		p.parseType()
	}
	if p.expect(token.Eq, "expected '='") {
		p.parseExpr()
	}
	p.expect(token.Semicolon, "expected ';'")
	p.tb.FinishNode()
}
