package syntax

import (
	"iter"

	"ruse/internal/source"
)

// NodeID addresses a node inside a Tree's arena. 0 is the nil node.
type NodeID uint32

// NilNode is the absent-node sentinel.
const NilNode NodeID = 0

// Node is one arena slot: a kind tag, a byte span, and index links to
// the node's lexical neighbors. No pointers, so a Tree is trivially
// shareable across parallel readers.
type Node struct {
	Kind       NodeKind
	Span       source.Span
	Parent     NodeID
	FirstChild NodeID
	LastChild  NodeID
	NextSib    NodeID
	PrevSib    NodeID
}

// ParseError is a parser- or lexer-level error attached to the tree.
// A Span with Start == End is a point location; the diagnostics layer
// widens it before rendering. Kind is the lexer's error kind string,
// or empty for errors raised by the parser itself.
type ParseError struct {
	Span source.Span
	Msg  string
	Kind string
}

// Tree is an immutable syntax tree over a single file: an arena of
// nodes (1-based; index 0 is the nil sentinel) plus the parse errors
// collected while building it. All read accessors are safe for
// concurrent use.
type Tree struct {
	file   *source.File
	nodes  []Node
	root   NodeID
	errors []ParseError
}

// File returns the underlying source file.
func (t *Tree) File() *source.File { return t.file }

// Root returns the SourceFile node.
func (t *Tree) Root() NodeID { return t.root }

// Errors returns the parse errors in document order. The slice is
// read-only.
func (t *Tree) Errors() []ParseError { return t.errors }

// Len returns the number of allocated nodes.
func (t *Tree) Len() int { return len(t.nodes) - 1 }

func (t *Tree) node(id NodeID) *Node {
	if id == NilNode || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Kind returns the node's kind tag, or InvalidNode for the nil node.
func (t *Tree) Kind(id NodeID) NodeKind {
	n := t.node(id)
	if n == nil {
		return InvalidNode
	}
	return n.Kind
}

// Span returns the node's byte span.
func (t *Tree) Span(id NodeID) source.Span {
	n := t.node(id)
	if n == nil {
		return source.Span{File: t.file.ID}
	}
	return n.Span
}

// Text returns the exact source text covered by the node.
func (t *Tree) Text(id NodeID) string {
	return t.file.Text(t.Span(id))
}

func (t *Tree) Parent(id NodeID) NodeID {
	n := t.node(id)
	if n == nil {
		return NilNode
	}
	return n.Parent
}

func (t *Tree) FirstChild(id NodeID) NodeID {
	n := t.node(id)
	if n == nil {
		return NilNode
	}
	return n.FirstChild
}

func (t *Tree) LastChild(id NodeID) NodeID {
	n := t.node(id)
	if n == nil {
		return NilNode
	}
	return n.LastChild
}

func (t *Tree) NextSibling(id NodeID) NodeID {
	n := t.node(id)
	if n == nil {
		return NilNode
	}
	return n.NextSib
}

func (t *Tree) PrevSibling(id NodeID) NodeID {
	n := t.node(id)
	if n == nil {
		return NilNode
	}
	return n.PrevSib
}

// Children iterates the node's direct children in document order.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for c := t.FirstChild(id); c != NilNode; c = t.NextSibling(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Descendants iterates the subtree rooted at id in preorder, id
// included.
func (t *Tree) Descendants(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		var walk func(NodeID) bool
		walk = func(n NodeID) bool {
			if !yield(n) {
				return false
			}
			for c := t.FirstChild(n); c != NilNode; c = t.NextSibling(c) {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		if id != NilNode {
			walk(id)
		}
	}
}

// DescendantsOfKind iterates the subtree in preorder, filtered to one
// kind. This is the shape every structural check starts from.
func (t *Tree) DescendantsOfKind(id NodeID, kind NodeKind) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for n := range t.Descendants(id) {
			if t.Kind(n) == kind {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// ChildOfKind returns the first direct child with the given kind.
func (t *Tree) ChildOfKind(id NodeID, kind NodeKind) NodeID {
	for c := range t.Children(id) {
		if t.Kind(c) == kind {
			return c
		}
	}
	return NilNode
}

// ChildrenOfKind collects direct children of one kind.
func (t *Tree) ChildrenOfKind(id NodeID, kind NodeKind) []NodeID {
	var out []NodeID
	for c := range t.Children(id) {
		if t.Kind(c) == kind {
			out = append(out, c)
		}
	}
	return out
}
