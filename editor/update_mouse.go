package editor

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if !m.focused {
		return m, cmd
	}
	// Only left presses move the pointer focus; the wheel scrolls freely.
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmd
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, cmd
	}

	if pos, ok := m.lineAtRow(m.viewport.YOffset + msg.Y); ok {
		m.nb.SelectLine(pos)
		m.sync()
	}
	return m, cmd
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

// lineAtRow maps a content row to the line rendered on it.
func (m Model) lineAtRow(row int) (int, bool) {
	if row < 0 || len(m.rows) == 0 || row >= m.viewport.TotalLineCount() {
		return 0, false
	}
	i := sort.Search(len(m.rows), func(i int) bool { return m.rows[i] > row })
	return i - 1, i > 0
}
