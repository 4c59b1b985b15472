package surface

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var voidElements = map[string]struct{}{
	"br": {}, "hr": {}, "img": {}, "input": {}, "wbr": {},
}

// ParseMarkup parses raw line markup into a tree rooted at a synthetic line
// element. Comments and doctypes are dropped.
func ParseMarkup(markup string) (*Node, error) {
	root := NewElement("div")
	if markup == "" {
		return root, nil
	}

	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	for _, n := range nodes {
		root.Append(fromHTML(n))
	}
	return root, nil
}

func fromHTML(n *html.Node) *Node {
	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)
	case html.ElementNode:
		e := &Node{Kind: ElementNode, Tag: n.Data}
		for _, a := range n.Attr {
			e.Attr = append(e.Attr, Attr{Key: a.Key, Val: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.Append(fromHTML(c))
		}
		return e
	default:
		return nil
	}
}

// RenderMarkup serializes the children of root the way a browser reports
// innerHTML: text escapes only &, < and >, and U+00A0 is written as &nbsp;.
func RenderMarkup(root *Node) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	for _, c := range root.Children {
		writeNode(&sb, c)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	if n.Kind == TextNode {
		sb.WriteString(textEscaper.Replace(n.Text))
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(attrEscaper.Replace(a.Val))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if n.isVoid() {
		return
	}
	for _, c := range n.Children {
		writeNode(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\u00a0", "&nbsp;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "\u00a0", "&nbsp;")
)

// PlainText returns the user-visible text of root. Line breaks become "\n".
func PlainText(root *Node) string {
	var sb strings.Builder
	Walk(root, func(n *Node) bool {
		switch {
		case n.Kind == TextNode:
			sb.WriteString(n.Text)
		case n.Tag == "br":
			sb.WriteByte('\n')
		}
		return true
	})
	return sb.String()
}

// MarkupText returns the plain text of raw markup, or "" if it cannot be
// parsed.
func MarkupText(markup string) string {
	root, err := ParseMarkup(markup)
	if err != nil {
		return ""
	}
	return PlainText(root)
}
