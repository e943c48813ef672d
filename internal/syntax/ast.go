package syntax

// Typed accessors over the raw tree. These mirror the grammar:
//
//	UseDecl     = 'use' UseTree ';'
//	UseTree     = Path ('::' UseTreeList)? | UseTreeList
//	UseTreeList = '{' UseTree (',' UseTree)* '}'
//	Path        = PathSegment ('::' PathSegment)*
//	StructLit   = PathExpr '{' StructLitFieldList '}'
//
// They stay close to the raw NodeID surface so checks can fall back to
// sibling navigation when they need token-level precision.

// UseTrees returns the direct UseTree children of a UseTreeList.
func UseTrees(t *Tree, list NodeID) []NodeID {
	return t.ChildrenOfKind(list, UseTree)
}

// UseTreePath returns the Path child of a UseTree, or NilNode when the
// tree starts with a brace group.
func UseTreePath(t *Tree, tree NodeID) NodeID {
	return t.ChildOfKind(tree, Path)
}

// PathSegments returns the PathSegment children of a Path.
func PathSegments(t *Tree, path NodeID) []NodeID {
	return t.ChildrenOfKind(path, PathSegment)
}

// IsSelfTree reports whether a UseTree is the bare self-reference:
// a path of exactly one segment spelled with the 'self' keyword.
func IsSelfTree(t *Tree, tree NodeID) bool {
	path := UseTreePath(t, tree)
	if path == NilNode {
		return false
	}
	segs := PathSegments(t, path)
	if len(segs) != 1 {
		return false
	}
	return t.Kind(t.FirstChild(segs[0])) == TokSelfKw
}

// StructLitFields returns the StructLitField children of a struct
// literal, in document order.
func StructLitFields(t *Tree, lit NodeID) []NodeID {
	list := t.ChildOfKind(lit, StructLitFieldList)
	if list == NilNode {
		return nil
	}
	return t.ChildrenOfKind(list, StructLitField)
}

// FieldName returns the identifier leaf naming a struct literal field.
func FieldName(t *Tree, field NodeID) NodeID {
	return t.ChildOfKind(field, TokIdent)
}

// FieldExpr returns the initializer expression of a struct literal
// field, or NilNode for shorthand fields.
func FieldExpr(t *Tree, field NodeID) NodeID {
	for c := range t.Children(field) {
		if isExprKind(t.Kind(c)) {
			return c
		}
	}
	return NilNode
}

func isExprKind(k NodeKind) bool {
	switch k {
	case PathExpr, LiteralExpr, StructLit, RefExpr, ParenExpr:
		return true
	default:
		return false
	}
}
