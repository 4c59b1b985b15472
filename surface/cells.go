package surface

import "github.com/iw2rmb/folio/internal/grapheme"

// A cell is one user-visible editing unit: a grapheme inside a text node or a
// void element such as <br>. Host-native editing moves and deletes by cells;
// boundaries are cell indices in [0, len(cells)].
type cell struct {
	node *Node
	idx  int // grapheme index for text nodes, -1 for void elements
}

func cellsOf(root *Node) []cell {
	var out []cell
	Walk(root, func(n *Node) bool {
		switch {
		case n.Kind == TextNode:
			for i := 0; i < n.Len(); i++ {
				out = append(out, cell{node: n, idx: i})
			}
		case n.isVoid():
			out = append(out, cell{node: n, idx: -1})
		}
		return true
	})
	return out
}

func cellCount(n *Node) int {
	switch {
	case n.Kind == TextNode:
		return n.Len()
	case n.isVoid():
		return 1
	}
	c := 0
	for _, ch := range n.Children {
		c += cellCount(ch)
	}
	return c
}

// boundary returns the number of cells before p. Points outside root map to 0.
func boundary(root *Node, p Point) int {
	if p.Node == nil || !root.Contains(p.Node) {
		return 0
	}

	before := func(k int) int {
		c := 0
		for _, ch := range p.Node.Children[:clampInt(k, 0, len(p.Node.Children))] {
			c += cellCount(ch)
		}
		return c
	}
	if p.Node == root {
		return before(p.Offset)
	}

	n := 0
	found := 0
	Walk(root, func(x *Node) bool {
		if x == p.Node {
			if x.Kind == TextNode {
				found = n + clampInt(p.Offset, 0, x.Len())
			} else {
				found = n + before(p.Offset)
			}
			return false
		}
		switch {
		case x.Kind == TextNode:
			n += x.Len()
		case x.isVoid():
			n++
		}
		return true
	})
	return found
}

// pointAt resolves cell boundary i to a Point. Text positions are preferred
// over element positions; between two text nodes the later one wins.
func pointAt(root *Node, i int) Point {
	cells := cellsOf(root)
	i = clampInt(i, 0, len(cells))

	if i < len(cells) && cells[i].idx >= 0 {
		return Point{Node: cells[i].node, Offset: cells[i].idx}
	}
	if i > 0 && cells[i-1].idx >= 0 {
		return Point{Node: cells[i-1].node, Offset: cells[i-1].idx + 1}
	}
	if i < len(cells) {
		e := cells[i].node
		return Point{Node: e.Parent, Offset: e.index()}
	}
	if i > 0 {
		e := cells[i-1].node
		return Point{Node: e.Parent, Offset: e.index() + 1}
	}
	return Point{Node: root, Offset: 0}
}

// deleteCells removes cells [from, to) and normalizes the tree.
func deleteCells(root *Node, from, to int) bool {
	cells := cellsOf(root)
	from = clampInt(from, 0, len(cells))
	to = clampInt(to, from, len(cells))
	if from == to {
		return false
	}

	type textCut struct{ start, end int }
	cuts := map[*Node]*textCut{}
	var order []*Node
	var voids []*Node
	for _, c := range cells[from:to] {
		if c.idx < 0 {
			voids = append(voids, c.node)
			continue
		}
		cut, ok := cuts[c.node]
		if !ok {
			cut = &textCut{start: c.idx, end: c.idx + 1}
			cuts[c.node] = cut
			order = append(order, c.node)
			continue
		}
		cut.end = c.idx + 1
	}

	for _, n := range order {
		cut := cuts[n]
		n.Text = grapheme.Remove(n.Text, cut.start, cut.end)
	}
	for _, n := range voids {
		detach(n)
	}
	normalize(root)
	return true
}

// insertCells inserts s at boundary i and returns the boundary after it.
func insertCells(root *Node, i int, s string) int {
	total := cellCount(root)
	p := pointAt(root, i)

	switch {
	case p.Node.Kind == TextNode:
		p.Node.Text = grapheme.Insert(p.Node.Text, p.Offset, s)
	case p.Offset > 0 && p.Node.Children[p.Offset-1].Kind == TextNode:
		prev := p.Node.Children[p.Offset-1]
		prev.Text += s
	case p.Offset < len(p.Node.Children) && p.Node.Children[p.Offset].Kind == TextNode:
		next := p.Node.Children[p.Offset]
		next.Text = s + next.Text
	default:
		insertChild(p.Node, p.Offset, NewText(s))
	}

	return i + cellCount(root) - total
}

func insertChild(parent *Node, at int, child *Node) {
	at = clampInt(at, 0, len(parent.Children))
	child.Parent = parent
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[at+1:], parent.Children[at:])
	parent.Children[at] = child
}

func detach(n *Node) {
	p := n.Parent
	if p == nil {
		return
	}
	i := n.index()
	p.Children = append(p.Children[:i], p.Children[i+1:]...)
	n.Parent = nil
}

// normalize drops empty text nodes and emptied non-void elements, and merges
// adjacent text siblings.
func normalize(n *Node) {
	out := n.Children[:0]
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			normalize(c)
			if len(c.Children) == 0 && !c.isVoid() {
				c.Parent = nil
				continue
			}
		}
		if c.Kind == TextNode {
			if c.Text == "" {
				c.Parent = nil
				continue
			}
			if k := len(out); k > 0 && out[k-1].Kind == TextNode {
				out[k-1].Text += c.Text
				c.Parent = nil
				continue
			}
		}
		out = append(out, c)
	}
	for i := len(out); i < len(n.Children); i++ {
		n.Children[i] = nil
	}
	n.Children = out
}
