package syntax

import (
	"fmt"

	"fortio.org/safecast"

	"ruse/internal/source"
	"ruse/internal/token"
)

// Builder assembles a Tree from parser events: StartNode/FinishNode
// bracket composite nodes, Token appends leaves. Composite spans are
// the cover of their children; childless composites collapse to a
// point at the current offset.
type Builder struct {
	file   *source.File
	nodes  []Node
	stack  []NodeID
	pos    uint32
	errors []ParseError
}

// NewBuilder creates a builder for the given file.
func NewBuilder(file *source.File) *Builder {
	return &Builder{
		file:  file,
		nodes: make([]Node, 1, 64), // slot 0 is the nil sentinel
		stack: make([]NodeID, 0, 8),
	}
}

func (b *Builder) allocate(n Node) NodeID {
	id, err := safecast.Conv[uint32](len(b.nodes))
	if err != nil {
		panic(fmt.Errorf("node arena overflow: %w", err))
	}
	b.nodes = append(b.nodes, n)
	return NodeID(id)
}

func (b *Builder) attach(id NodeID) {
	if len(b.stack) == 0 {
		return
	}
	parent := b.stack[len(b.stack)-1]
	p := &b.nodes[parent]
	b.nodes[id].Parent = parent
	if p.FirstChild == NilNode {
		p.FirstChild = id
		p.LastChild = id
		return
	}
	prev := p.LastChild
	b.nodes[prev].NextSib = id
	b.nodes[id].PrevSib = prev
	p.LastChild = id
}

// StartNode opens a composite node of the given kind.
func (b *Builder) StartNode(kind NodeKind) {
	id := b.allocate(Node{
		Kind: kind,
		Span: source.Span{File: b.file.ID, Start: b.pos, End: b.pos},
	})
	b.attach(id)
	b.stack = append(b.stack, id)
}

// Token appends a token leaf to the currently open node.
func (b *Builder) Token(tok token.Token) {
	id := b.allocate(Node{
		Kind: KindOfToken(tok.Kind),
		Span: tok.Span,
	})
	b.attach(id)
	b.pos = tok.Span.End
}

// FinishNode closes the innermost open node, fixing its span to the
// cover of its children.
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic(fmt.Errorf("syntax: FinishNode without StartNode"))
	}
	id := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	n := &b.nodes[id]
	if n.FirstChild != NilNode {
		n.Span = b.nodes[n.FirstChild].Span.Cover(b.nodes[n.LastChild].Span)
	}
}

// Error records a parse error. An empty span marks a point location.
func (b *Builder) Error(span source.Span, msg string) {
	b.errors = append(b.errors, ParseError{Span: span, Msg: msg})
}

// LexError records an error forwarded from the lexer, tagged with its
// error kind.
func (b *Builder) LexError(kind string, span source.Span, msg string) {
	b.errors = append(b.errors, ParseError{Span: span, Msg: msg, Kind: kind})
}

// ErrorAt records a point-located parse error at the given offset.
func (b *Builder) ErrorAt(off uint32, msg string) {
	b.Error(source.Point(b.file.ID, off), msg)
}

// Finish seals the tree. The builder must be balanced: callers finish
// every node they start, the root included.
func (b *Builder) Finish() *Tree {
	if len(b.stack) != 0 {
		panic(fmt.Errorf("syntax: Finish with %d unfinished nodes", len(b.stack)))
	}
	// the first allocated node is the root
	root := NilNode
	if len(b.nodes) > 1 {
		root = NodeID(1)
	}
	return &Tree{
		file:   b.file,
		nodes:  b.nodes,
		root:   root,
		errors: b.errors,
	}
}
