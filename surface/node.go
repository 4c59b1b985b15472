package surface

import (
	"strings"

	"github.com/iw2rmb/folio/internal/grapheme"
)

type NodeKind uint8

const (
	TextNode NodeKind = iota
	ElementNode
)

type Attr struct {
	Key string
	Val string
}

// Node is one node of a line's content tree.
//
// Text is only meaningful for text nodes; Tag, Attr and Children only for
// elements. Parent is maintained by Append and the Memory edit operations.
type Node struct {
	Kind     NodeKind
	Tag      string
	Attr     []Attr
	Text     string
	Children []*Node
	Parent   *Node
}

func NewText(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

func NewElement(tag string, children ...*Node) *Node {
	n := &Node{Kind: ElementNode, Tag: tag}
	return n.Append(children...)
}

// Append adds children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

func (n *Node) IsText() bool { return n != nil && n.Kind == TextNode }

// Len returns the grapheme length of a text node, or the child count of an
// element. It is the upper bound of a Point offset inside n.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	if n.Kind == TextNode {
		return grapheme.Count(n.Text)
	}
	return len(n.Children)
}

// TextContent concatenates the text of n and its descendants.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == TextNode {
		return n.Text
	}
	var sb strings.Builder
	Walk(n, func(c *Node) bool {
		if c.Kind == TextNode {
			sb.WriteString(c.Text)
		}
		return true
	})
	return sb.String()
}

// Contains reports whether x is n or one of its descendants.
func (n *Node) Contains(x *Node) bool {
	for ; x != nil; x = x.Parent {
		if x == n {
			return true
		}
	}
	return false
}

func (n *Node) index() int {
	if n.Parent == nil {
		return 0
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return 0
}

func (n *Node) isVoid() bool {
	if n.Kind != ElementNode {
		return false
	}
	_, ok := voidElements[n.Tag]
	return ok
}

// Walk visits the descendants of root in depth-first pre-order. The root
// itself is not visited. Returning false from fn stops the walk.
func Walk(root *Node, fn func(n *Node) bool) {
	if root == nil {
		return
	}
	stack := make([]*Node, 0, len(root.Children))
	pushChildren := func(n *Node) {
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	pushChildren(root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		pushChildren(n)
	}
}

// Point addresses a caret location inside a tree: a grapheme offset for text
// nodes, a child index for elements.
type Point struct {
	Node   *Node
	Offset int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
