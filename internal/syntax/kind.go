package syntax

import (
	"ruse/internal/token"
)

// NodeKind tags every node in the tree. Token leaves and composite
// nodes share one kind space so that structural checks can walk the
// tree uniformly.
type NodeKind uint8

const (
	// InvalidNode is the zero kind; NodeID 0 maps to it.
	InvalidNode NodeKind = iota

	// Composite nodes.

	SourceFile
	UseDecl
	UseTree
	UseTreeList
	Path
	PathSegment
	StructDecl
	FieldDef
	TypeRef
	FnDecl
	ParamList
	Param
	Block
	LetStmt
	ExprStmt
	StructLit
	StructLitFieldList
	StructLitField
	PathExpr
	LiteralExpr
	RefExpr
	ParenExpr
	ErrorNode

	// Token leaves.

	TokIdent
	TokUseKw
	TokSelfKw
	TokStructKw
	TokFnKw
	TokLetKw
	TokTrueKw
	TokFalseKw
	TokIntLit
	TokStringLit
	TokColonColon
	TokColon
	TokSemicolon
	TokComma
	TokDot
	TokEq
	TokStar
	TokAmp
	TokLifetime
	TokLBrace
	TokRBrace
	TokLParen
	TokRParen
	TokError
)

var tokenKinds = map[token.Kind]NodeKind{
	token.Ident:      TokIdent,
	token.KwUse:      TokUseKw,
	token.KwSelf:     TokSelfKw,
	token.KwStruct:   TokStructKw,
	token.KwFn:       TokFnKw,
	token.KwLet:      TokLetKw,
	token.KwTrue:     TokTrueKw,
	token.KwFalse:    TokFalseKw,
	token.IntLit:     TokIntLit,
	token.StringLit:  TokStringLit,
	token.ColonColon: TokColonColon,
	token.Colon:      TokColon,
	token.Semicolon:  TokSemicolon,
	token.Comma:      TokComma,
	token.Dot:        TokDot,
	token.Eq:         TokEq,
	token.Star:       TokStar,
	token.Amp:        TokAmp,
	token.Lifetime:   TokLifetime,
	token.LBrace:     TokLBrace,
	token.RBrace:     TokRBrace,
	token.LParen:     TokLParen,
	token.RParen:     TokRParen,
}

// KindOfToken maps a lexer token kind to its leaf node kind.
func KindOfToken(k token.Kind) NodeKind {
	if nk, ok := tokenKinds[k]; ok {
		return nk
	}
	return TokError
}

// IsToken reports whether the kind tags a token leaf.
func (k NodeKind) IsToken() bool {
	return k >= TokIdent
}

var kindNames = [...]string{
	InvalidNode:        "Invalid",
	SourceFile:         "SourceFile",
	UseDecl:            "UseDecl",
	UseTree:            "UseTree",
	UseTreeList:        "UseTreeList",
	Path:               "Path",
	PathSegment:        "PathSegment",
	StructDecl:         "StructDecl",
	FieldDef:           "FieldDef",
	TypeRef:            "TypeRef",
	FnDecl:             "FnDecl",
	ParamList:          "ParamList",
	Param:              "Param",
	Block:              "Block",
	LetStmt:            "LetStmt",
	ExprStmt:           "ExprStmt",
	StructLit:          "StructLit",
	StructLitFieldList: "StructLitFieldList",
	StructLitField:     "StructLitField",
	PathExpr:           "PathExpr",
	LiteralExpr:        "LiteralExpr",
	RefExpr:            "RefExpr",
	ParenExpr:          "ParenExpr",
	ErrorNode:          "Error",
	TokIdent:           "IDENT",
	TokUseKw:           "USE_KW",
	TokSelfKw:          "SELF_KW",
	TokStructKw:        "STRUCT_KW",
	TokFnKw:            "FN_KW",
	TokLetKw:           "LET_KW",
	TokTrueKw:          "TRUE_KW",
	TokFalseKw:         "FALSE_KW",
	TokIntLit:          "INT",
	TokStringLit:       "STRING",
	TokColonColon:      "COLONCOLON",
	TokColon:           "COLON",
	TokSemicolon:       "SEMICOLON",
	TokComma:           "COMMA",
	TokDot:             "DOT",
	TokEq:              "EQ",
	TokStar:            "STAR",
	TokAmp:             "AMP",
	TokLifetime:        "LIFETIME",
	TokLBrace:          "LBRACE",
	TokRBrace:          "RBRACE",
	TokLParen:          "LPAREN",
	TokRParen:          "RPAREN",
	TokError:           "ERROR_TOKEN",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
