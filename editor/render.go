package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/folio/internal/grapheme"
	"github.com/iw2rmb/folio/line"
	"github.com/iw2rmb/folio/notebook"
)

const (
	gutterWidth      = 2
	activeMarker     = "▌"
	defaultRuleWidth = 32 // used until the viewport has a width
)

// blockCache keeps the displays of inactive lines keyed by line id, so
// spans of unchanged lines are rendered once.
type blockCache struct {
	entries map[int]cachedDisplay
}

type cachedDisplay struct {
	payload notebook.Payload
	display line.Display
}

func newBlockCache() *blockCache {
	return &blockCache{entries: make(map[int]cachedDisplay)}
}

func (m *Model) displayFor(pos int, l notebook.Line, next map[int]cachedDisplay) line.Display {
	if pos == m.ctrlPos && m.ctrl != nil {
		return m.ctrl.Display()
	}
	if c, ok := m.blocks.entries[l.ID]; ok && notebook.Equal(c.payload, l.Payload) {
		next[l.ID] = c
		return c.display
	}
	c := cachedDisplay{payload: l.Payload, display: line.For(pos, l, m.deps).Display()}
	next[l.ID] = c
	return c.display
}

func (m *Model) renderContent() string {
	lines := m.nb.Lines()
	width := m.contentWidth()
	next := make(map[int]cachedDisplay, len(lines))

	out := make([]string, 0, len(lines))
	rows := make([]int, 0, len(lines))
	row := 0
	for pos, l := range lines {
		d := m.displayFor(pos, l, next)
		block := m.renderBlock(d, width)
		block = m.withGutter(block, m.focused && pos == m.nb.Active())

		rows = append(rows, row)
		row += lipgloss.Height(block)
		out = append(out, block)
	}
	m.blocks.entries = next
	m.rows = rows
	return strings.Join(out, "\n")
}

func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - gutterWidth
	if w < 0 {
		return 0
	}
	return w
}

func (m *Model) withGutter(block string, active bool) string {
	first := strings.Repeat(" ", gutterWidth)
	if active {
		first = m.cfg.Style.Marker.Render(activeMarker) + " "
	}
	rows := strings.Split(block, "\n")
	for i := range rows {
		if i == 0 {
			rows[i] = first + rows[i]
			continue
		}
		rows[i] = strings.Repeat(" ", gutterWidth) + rows[i]
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderBlock(d line.Display, width int) string {
	switch d.Kind {
	case notebook.KindImage:
		return m.renderImage(d.Image, width)
	case notebook.KindRuleGrid:
		return m.renderRuleGrid(d.Grid, width)
	default:
		return m.renderText(d, width)
	}
}

func (m *Model) renderText(d line.Display, width int) string {
	st := m.cfg.Style.forSubtype(d.Subtype)

	var s string
	switch {
	case d.Focused && m.focused:
		cell, rest := " ", ""
		if n := grapheme.Count(d.After); n > 0 {
			cell = grapheme.Slice(d.After, 0, 1)
			rest = grapheme.Slice(d.After, 1, n)
		}
		s = st.Render(d.Before) +
			m.cfg.Style.Selection.Render(d.Selected) +
			m.cfg.Style.Cursor.Render(cell) +
			st.Render(rest)
	case d.RenderErr != nil:
		s = m.cfg.Style.Fallback.Render(d.Text)
	default:
		s = st.Render(d.Text)
	}

	if width > 0 {
		s = lipgloss.NewStyle().Width(width).Render(s)
	}
	return s
}

func imagePosition(a notebook.Alignment) lipgloss.Position {
	switch a {
	case notebook.AlignCenter:
		return lipgloss.Center
	case notebook.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func (m *Model) renderImage(img notebook.Image, width int) string {
	label := "[image]"
	if img.URL != "" {
		label = fmt.Sprintf("[image %s]", img.URL)
	}
	if width > 0 && grapheme.Width(label) > width {
		label = grapheme.Truncate(label, width-1, "…") + "]"
	}
	s := m.cfg.Style.Image.Render(label)
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, imagePosition(img.Alignment), s)
}

func (m *Model) renderRuleGrid(g notebook.RuleGrid, width int) string {
	if g.Count <= 0 {
		return m.cfg.Style.Placeholder.Render("(empty rule grid)")
	}
	if width <= 0 {
		width = defaultRuleWidth
	}
	row := m.cfg.Style.Rule.Render(ruleRow(g.Style, width))
	rows := make([]string, g.Count)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// ruleRow draws one row of a rule grid; grids cross the rule every fourth
// cell.
func ruleRow(style notebook.GridStyle, width int) string {
	if style != notebook.GridFull {
		return strings.Repeat("─", width)
	}
	var sb strings.Builder
	for i := 0; i < width; i++ {
		if i%4 == 0 {
			sb.WriteString("┼")
		} else {
			sb.WriteString("─")
		}
	}
	return sb.String()
}
