package parser

import (
	"strings"

	"github.com/cwbudde/cminus-compiler/internal/lexer"
)

// Node is one parse-tree node: either an interior node named after the
// non-terminal it was built from, or a leaf holding the token it
// matched (or the literal "epsilon" for an epsilon transition).
type Node struct {
	Name     string
	Leaf     bool
	Token    lexer.Token
	HasToken bool
	Children []*Node
}

func newInterior(name string) *Node { return &Node{Name: name} }

func leafToken(tok lexer.Token) *Node {
	return &Node{Name: tok.String(), Leaf: true, Token: tok, HasToken: true}
}

func leafEpsilon() *Node { return &Node{Name: "epsilon", Leaf: true} }

func (n *Node) addChild(c *Node) { n.Children = append(n.Children, c) }

// label renders a leaf node's text exactly as parse_tree.txt requires:
// "(KIND, lexeme)" for ordinary tokens, "$" for EOF, or the bare
// "epsilon" literal.
func (n *Node) label() string {
	if !n.Leaf {
		return n.Name
	}
	if !n.HasToken {
		return n.Name // "epsilon"
	}
	if n.Token.Kind == lexer.EOF {
		return "$"
	}
	return n.Token.String()
}

// Render writes the indented box-drawing tree parse_tree.txt uses.
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b, "")
	return b.String()
}

func (n *Node) render(b *strings.Builder, prefix string) {
	b.WriteString(n.label())
	b.WriteByte('\n')
	for i, c := range n.Children {
		last := i == len(n.Children)-1
		connector := "├── "
		cont := "│   "
		if last {
			connector = "└── "
			cont = "    "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		c.render(b, prefix+cont)
	}
}
