package parser

import (
	"ruse/internal/syntax"
	"ruse/internal/token"
)

func (p *Parser) parseSourceFile() {
	p.tb.StartNode(syntax.SourceFile)
	for !p.atEOF() {
		switch p.lx.Peek().Kind {
		case token.KwUse:
			p.parseUseDecl()
		case token.KwStruct:
			p.parseStructDecl()
		case token.KwFn:
			p.parseFnDecl()
		default:
			p.bumpError("expected item")
		}
	}
	p.tb.FinishNode()
}

// StructDecl = 'struct' Ident '{' (FieldDef (',' FieldDef)* ','?)? '}'
func (p *Parser) parseStructDecl() {
	p.tb.StartNode(syntax.StructDecl)
	p.advance() // 'struct'
	p.expect(token.Ident, "expected struct name")
	if p.expect(token.LBrace, "expected '{'") {
		for !p.at(token.RBrace) && !p.atEOF() {
			p.parseFieldDef()
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.RBrace, "expected '}'")
	}
	p.tb.FinishNode()
}

// FieldDef = Ident ':' Type
func (p *Parser) parseFieldDef() {
	p.tb.StartNode(syntax.FieldDef)
	p.expect(token.Ident, "expected field name")
	p.expect(token.Colon, "expected ':'")
	p.parseType()
	p.tb.FinishNode()
}

// TypeRef = '&'? Lifetime? Ident ('::' Ident)*
func (p *Parser) parseType() {
	p.tb.StartNode(syntax.TypeRef)
	if p.at(token.Amp) {
		p.advance()
	}
	if p.at(token.Lifetime) {
		p.advance()
	}
	if p.at(token.Ident) || p.at(token.KwSelf) {
		p.advance()
		for p.at(token.ColonColon) {
			p.advance()
			p.expect(token.Ident, "expected type segment")
		}
	} else {
		p.tb.ErrorAt(p.errOffset(), "expected type")
	}
	p.tb.FinishNode()
}

// FnDecl = 'fn' Ident '(' (Param (',' Param)*)? ')' Block
func (p *Parser) parseFnDecl() {
	p.tb.StartNode(syntax.FnDecl)
	p.advance() // 'fn'
	p.expect(token.Ident, "expected function name")
	if p.expect(token.LParen, "expected '('") {
		p.tb.StartNode(syntax.ParamList)
		for !p.at(token.RParen) && !p.atEOF() {
			p.parseParam()
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.tb.FinishNode()
		p.expect(token.RParen, "expected ')'")
	}
	if p.at(token.LBrace) {
		p.parseBlock()
	} else {
		p.tb.ErrorAt(p.errOffset(), "expected function body")
	}
	p.tb.FinishNode()
}

// Param = Ident ':' Type
func (p *Parser) parseParam() {
	p.tb.StartNode(syntax.Param)
	p.expect(token.Ident, "expected parameter name")
	p.expect(token.Colon, "expected ':'")
	p.parseType()
	p.tb.FinishNode()
}
