package caret

import (
	"strings"

	"github.com/iw2rmb/folio/internal/grapheme"
	"github.com/iw2rmb/folio/surface"
)

// Selection is a pair of linear positions. Anchor may be greater than Focus;
// the direction is kept as given.
type Selection struct {
	Anchor int
	Focus  int
}

// Caret returns a collapsed selection at pos.
func Caret(pos int) Selection { return Selection{Anchor: pos, Focus: pos} }

func (s Selection) Collapsed() bool { return s.Anchor == s.Focus }

func (s Selection) Start() int {
	if s.Anchor < s.Focus {
		return s.Anchor
	}
	return s.Focus
}

func (s Selection) End() int {
	if s.Anchor > s.Focus {
		return s.Anchor
	}
	return s.Focus
}

// Backward reports whether the anchor comes after the focus.
func (s Selection) Backward() bool { return s.Anchor > s.Focus }

// Rest returns the position the caret rests at once the selection is
// applied: the focus of a forward selection, the anchor of a backward one.
func (s Selection) Rest() int {
	if s.Backward() {
		return s.Anchor
	}
	return s.Focus
}

// Read returns the surface's native selection as linear positions, anchor and
// focus in their original order. ok is false when the surface holds no
// selection.
func Read(s surface.Surface) (sel Selection, ok bool) {
	anchor, focus, ok := s.Selection()
	if !ok {
		return Selection{}, false
	}
	root := s.Root()
	return Selection{Anchor: ToLinear(root, anchor), Focus: ToLinear(root, focus)}, true
}

// Apply sets the surface's native selection. Out-of-range positions clamp.
func Apply(s surface.Surface, sel Selection) {
	root := s.Root()
	s.SetSelection(ToTree(root, sel.Anchor), ToTree(root, sel.Focus))
}

// Position returns the linear caret position, or 0 without a selection.
func Position(s surface.Surface) int {
	sel, ok := Read(s)
	if !ok {
		return 0
	}
	return sel.Rest()
}

// SetCaret collapses the native selection at pos.
func SetCaret(s surface.Surface, pos int) { Apply(s, Caret(pos)) }

// SetCaretEnd collapses the native selection after the last slot.
func SetCaretEnd(s surface.Surface) { SetCaret(s, Total(s.Root())) }

// TextBefore returns the visible text in front of the caret.
func TextBefore(s surface.Surface) string {
	_, focus, ok := s.Selection()
	if !ok {
		return ""
	}
	return TextBeforePoint(s.Root(), focus)
}

// AtStart reports whether the caret is collapsed with no visible text before
// it.
func AtStart(s surface.Surface) bool {
	sel, ok := Read(s)
	if !ok || !sel.Collapsed() {
		return false
	}
	return TextBefore(s) == ""
}

// AtEnd reports whether the caret is collapsed with no visible text after it.
func AtEnd(s surface.Surface) bool {
	sel, ok := Read(s)
	if !ok || !sel.Collapsed() {
		return false
	}
	return len(TextBefore(s)) == len(s.Text())
}

// TextBeforePoint returns the visible text of root in front of p. Line breaks
// count as "\n".
func TextBeforePoint(root *surface.Node, p surface.Point) string {
	if root == nil || p.Node == nil || !root.Contains(p.Node) {
		return ""
	}
	if p.Node == root {
		return plainChildren(root.Children[:clamp(p.Offset, 0, len(root.Children))])
	}

	var sb strings.Builder
	surface.Walk(root, func(n *surface.Node) bool {
		if n == p.Node {
			if n.IsText() {
				sb.WriteString(grapheme.Slice(n.Text, 0, p.Offset))
			} else {
				sb.WriteString(plainChildren(n.Children[:clamp(p.Offset, 0, len(n.Children))]))
			}
			return false
		}
		writePlain(&sb, n)
		return true
	})
	return sb.String()
}

func plainChildren(children []*surface.Node) string {
	tmp := surface.NewElement("div")
	tmp.Children = children
	return surface.PlainText(tmp)
}

func writePlain(sb *strings.Builder, n *surface.Node) {
	switch {
	case n.IsText():
		sb.WriteString(n.Text)
	case n.Tag == "br":
		sb.WriteByte('\n')
	}
}
