// Package tree implements minic's parse tree: a generic node model
// (label, optional token, ordered children) plus an explicit stack of open
// nodes used to build it. Spec §9's design notes call out the original
// "current node" back-pointer cursor as an anti-pattern to replace with
// exactly this kind of explicit stack; Builder is that replacement.
package tree

import (
	"fmt"
	"strings"

	"github.com/andressilva/minic/internal/token"
)

// Node is one parse-tree node: a grammar-rule label, an optional token (set
// when the node represents a terminal or carries a defining token, e.g. an
// identifier or literal), and an ordered list of children.
type Node struct {
	Label    string
	Token    *token.Token
	Children []*Node
}

// NewNode creates a childless node. tok may be nil.
func NewNode(label string, tok *token.Token) *Node {
	return &Node{Label: label, Token: tok}
}

// AddChild appends a child node, preserving the order it was built in.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// String renders a node's own label, in the "Label [lexeme]" form used by
// pretty-printing when a token is present (grounded on the decorated-node
// naming scheme in the original parse tree builder).
func (n *Node) String() string {
	if n.Token != nil {
		return fmt.Sprintf("%s [%s]", n.Label, n.Token.Lexeme)
	}
	return n.Label
}

// Builder assembles a tree using an explicit stack of open nodes instead of
// a mutable "current node" cursor living on the tree itself. Begin pushes a
// new node as a child of whatever is currently open (or as the root, if
// no node has been added yet); End pops it. This makes "where am I in the tree"
// a property of the call stack, which mirrors how the parser's own
// recursive-descent call stack is shaped.
type Builder struct {
	root  *Node
	stack []*Node
}

// NewBuilder creates an empty Builder with no open nodes.
func NewBuilder() *Builder {
	return &Builder{}
}

// Begin opens a new node labeled label (with optional token tok), makes it
// a child of the currently open node (or the tree root, if this is the
// first Begin call), pushes it onto the open-node stack, and returns it.
func (b *Builder) Begin(label string, tok *token.Token) *Node {
	n := NewNode(label, tok)
	if len(b.stack) == 0 {
		if b.root == nil {
			b.root = n
		} else {
			b.root.AddChild(n)
		}
	} else {
		top := b.stack[len(b.stack)-1]
		top.AddChild(n)
	}
	b.stack = append(b.stack, n)
	return n
}

// Leaf adds a childless node (typically a terminal) under the currently
// open node without pushing it onto the stack -- shorthand for Begin
// immediately followed by End.
func (b *Builder) Leaf(label string, tok *token.Token) *Node {
	n := NewNode(label, tok)
	if len(b.stack) == 0 {
		if b.root == nil {
			b.root = n
		} else {
			b.root.AddChild(n)
		}
		return n
	}
	top := b.stack[len(b.stack)-1]
	top.AddChild(n)
	return n
}

// End closes the innermost open node and returns it. It panics if no node
// is open -- a Begin/End mismatch is a parser bug, not a user-facing error.
func (b *Builder) End() *Node {
	if len(b.stack) == 0 {
		panic("tree: End called with no open node")
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

// Root returns the finished tree's root node. It is only meaningful once
// every Begin has been matched by an End.
func (b *Builder) Root() *Node {
	return b.root
}

// Render pretty-prints the tree in the indented form required by spec
// §6.4: one node per line, each level of depth indented by two spaces,
// using Node.String() for each line's label.
func Render(root *Node) string {
	var b strings.Builder
	renderNode(&b, root, 0)
	return strings.TrimRight(b.String(), "\n")
}

func renderNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.String())
	b.WriteByte('\n')
	for _, child := range n.Children {
		renderNode(b, child, depth+1)
	}
}
