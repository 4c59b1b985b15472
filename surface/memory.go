package surface

type selectionState struct {
	active bool
	anchor Point
	focus  Point
}

// MoveDir is the direction of a host-native caret move.
type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

// Memory is an in-memory Surface with browser-like editing: typing replaces
// the selection, backspace and delete remove one cell, arrows move by cells.
type Memory struct {
	root    *Node
	version uint64
	sel     selectionState
}

var _ Surface = (*Memory)(nil)

// NewMemory parses markup and places a collapsed selection at the start.
func NewMemory(markup string) (*Memory, error) {
	root, err := ParseMarkup(markup)
	if err != nil {
		return nil, err
	}
	start := Point{Node: root}
	return &Memory{
		root: root,
		sel:  selectionState{active: true, anchor: start, focus: start},
	}, nil
}

func (m *Memory) Root() *Node { return m.root }

// Version increases on every effective change of content or selection.
func (m *Memory) Version() uint64 { return m.version }

func (m *Memory) Markup() string { return RenderMarkup(m.root) }

func (m *Memory) Text() string { return PlainText(m.root) }

// SetMarkup replaces the content. The selection collapses to the start, as a
// browser drops a selection whose nodes were replaced.
func (m *Memory) SetMarkup(markup string) error {
	root, err := ParseMarkup(markup)
	if err != nil {
		return err
	}
	m.root = root
	start := Point{Node: root}
	m.sel = selectionState{active: true, anchor: start, focus: start}
	m.version++
	return nil
}

func (m *Memory) Selection() (anchor, focus Point, ok bool) {
	if !m.sel.active {
		return Point{}, Point{}, false
	}
	return m.sel.anchor, m.sel.focus, true
}

func (m *Memory) SetSelection(anchor, focus Point) {
	next := selectionState{
		active: true,
		anchor: m.clampPoint(anchor),
		focus:  m.clampPoint(focus),
	}
	if next == m.sel {
		return
	}
	m.sel = next
	m.version++
}

// Blur drops the native selection.
func (m *Memory) Blur() {
	if !m.sel.active {
		return
	}
	m.sel = selectionState{}
	m.version++
}

func (m *Memory) clampPoint(p Point) Point {
	if p.Node == nil || !m.root.Contains(p.Node) {
		return Point{Node: m.root}
	}
	return Point{Node: p.Node, Offset: clampInt(p.Offset, 0, p.Node.Len())}
}

// bounds returns the anchor and focus as cell boundaries.
func (m *Memory) bounds() (anchor, focus int) {
	if !m.sel.active {
		return 0, 0
	}
	return boundary(m.root, m.sel.anchor), boundary(m.root, m.sel.focus)
}

func (m *Memory) collapse(i int) {
	p := pointAt(m.root, i)
	m.sel = selectionState{active: true, anchor: p, focus: p}
}

// InsertText inserts s at the caret, or replaces the selection.
func (m *Memory) InsertText(s string) {
	if s == "" {
		m.DeleteSelection()
		return
	}
	a, f := m.bounds()
	start, end := minInt(a, f), maxInt(a, f)
	if start != end {
		deleteCells(m.root, start, end)
	}
	m.collapse(insertCells(m.root, start, s))
	m.version++
}

// DeleteSelection deletes the selected cells, if any.
func (m *Memory) DeleteSelection() bool {
	a, f := m.bounds()
	if a == f {
		return false
	}
	start, end := minInt(a, f), maxInt(a, f)
	deleteCells(m.root, start, end)
	m.collapse(start)
	m.version++
	return true
}

// DeleteBackward applies backspace semantics.
func (m *Memory) DeleteBackward() {
	if m.DeleteSelection() {
		return
	}
	_, f := m.bounds()
	if f == 0 {
		return
	}
	deleteCells(m.root, f-1, f)
	m.collapse(f - 1)
	m.version++
}

// DeleteForward applies delete-key semantics.
func (m *Memory) DeleteForward() {
	if m.DeleteSelection() {
		return
	}
	_, f := m.bounds()
	if !deleteCells(m.root, f, f+1) {
		return
	}
	m.collapse(f)
	m.version++
}

// Move moves the focus by one cell or to a line edge. With extend the anchor
// stays put; without it a non-empty selection collapses toward dir first.
func (m *Memory) Move(dir MoveDir, extend bool) {
	a, f := m.bounds()
	total := cellCount(m.root)

	next := f
	switch dir {
	case DirLeft:
		if !extend && a != f {
			next = minInt(a, f)
		} else {
			next = f - 1
		}
	case DirRight:
		if !extend && a != f {
			next = maxInt(a, f)
		} else {
			next = f + 1
		}
	case DirHome:
		next = 0
	case DirEnd:
		next = total
	}
	next = clampInt(next, 0, total)

	prev := m.sel
	if extend {
		anchor := m.sel.anchor
		if !m.sel.active {
			anchor = pointAt(m.root, f)
		}
		m.sel = selectionState{active: true, anchor: anchor, focus: pointAt(m.root, next)}
	} else {
		m.collapse(next)
	}
	if m.sel != prev {
		m.version++
	}
}

// SelectAll selects the whole line content.
func (m *Memory) SelectAll() {
	m.SetSelection(pointAt(m.root, 0), pointAt(m.root, cellCount(m.root)))
}

// Cells returns the number of editing cells (graphemes and void elements).
func (m *Memory) Cells() int { return cellCount(m.root) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
