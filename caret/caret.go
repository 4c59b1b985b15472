// Package caret maps between linear caret positions and points inside a
// line's content tree.
//
// A linear position counts slots in a depth-first pre-order walk of the
// descendants of a line root. Every descendant node owns one slot in front of
// it; a text node additionally owns one slot per grapheme cluster:
//
//	weight(text)    = 1 + graphemes(text)
//	weight(element) = 1
//
// The root itself owns no slot. Valid positions are [0, Total(root)], and for
// every p in that range ToLinear(root, ToTree(root, p)) == p.
package caret

import (
	"github.com/iw2rmb/folio/internal/grapheme"
	"github.com/iw2rmb/folio/surface"
)

// ownWeight is the number of slots n owns itself, excluding descendants.
func ownWeight(n *surface.Node) int {
	if n.IsText() {
		return 1 + grapheme.Count(n.Text)
	}
	return 1
}

// weight is the number of slots n and its descendants own.
func weight(n *surface.Node) int {
	w := ownWeight(n)
	for _, c := range n.Children {
		w += weight(c)
	}
	return w
}

func childrenWeight(children []*surface.Node) int {
	w := 0
	for _, c := range children {
		w += weight(c)
	}
	return w
}

// Total returns the number of slots under root.
func Total(root *surface.Node) int {
	if root == nil {
		return 0
	}
	return childrenWeight(root.Children)
}

// ToLinear converts a tree point to a linear position. Offsets are clamped to
// the node's length; points that do not belong to root map to 0.
func ToLinear(root *surface.Node, p surface.Point) int {
	if root == nil || p.Node == nil || !root.Contains(p.Node) {
		return 0
	}
	if p.Node == root {
		k := clamp(p.Offset, 0, len(root.Children))
		return childrenWeight(root.Children[:k])
	}

	before := 0
	pos := 0
	surface.Walk(root, func(n *surface.Node) bool {
		if n != p.Node {
			before += ownWeight(n)
			return true
		}
		if n.IsText() {
			pos = before + 1 + clamp(p.Offset, 0, grapheme.Count(n.Text))
		} else {
			k := clamp(p.Offset, 0, len(n.Children))
			pos = before + 1 + childrenWeight(n.Children[:k])
		}
		return false
	})
	return pos
}

// ToTree converts a linear position to a tree point.
//
// Positions <= 0 and any position in an empty tree resolve to (root, 0). The
// first node in pre-order whose slots cover pos receives the remainder as its
// offset; a position past Total clamps to the end of the last visited node.
func ToTree(root *surface.Node, pos int) surface.Point {
	start := surface.Point{Node: root}
	if root == nil || pos <= 0 || len(root.Children) == 0 {
		return start
	}

	var (
		before int
		last   *surface.Node
		found  *surface.Point
	)
	surface.Walk(root, func(n *surface.Node) bool {
		last = n
		w := ownWeight(n)
		if pos <= before+w {
			found = &surface.Point{Node: n, Offset: pos - 1 - before}
			return false
		}
		before += w
		return true
	})
	if found != nil {
		return *found
	}
	return surface.Point{Node: last, Offset: last.Len()}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
