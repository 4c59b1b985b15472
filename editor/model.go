package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/folio/line"
	"github.com/iw2rmb/folio/notebook"
)

// Model is a Bubble Tea component that renders and edits a notebook.
//
// The active line is driven by a line.Controller. After every update the
// controller is rebuilt when the notebook moved to another line or changed
// the active line's content behind the controller's back.
type Model struct {
	cfg  Config
	nb   *notebook.Notebook
	deps line.Deps

	ctrl    line.Controller
	ctrlPos int
	ctrlID  int

	focused bool

	viewport viewport.Model
	// rows holds the first visual row of every line in the last render.
	rows   []int
	blocks *blockCache

	lastVersion uint64
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	nb := cfg.Notebook
	if nb == nil {
		nb = notebook.New(notebook.Options{Now: cfg.Now, Lines: cfg.Lines})
	}
	m := Model{
		cfg:      cfg,
		nb:       nb,
		focused:  true,
		viewport: viewport.New(0, 0),
		blocks:   newBlockCache(),
	}
	m.deps = line.Deps{
		Commands:    nb,
		Keywords:    cfg.Keywords,
		Transformer: cfg.Transformer,
		Logger:      cfg.Logger,
	}
	m.syncController()
	m.lastVersion = m.nb.Version()
	m.rebuildContent()
	return m
}

func (m Model) Notebook() *notebook.Notebook { return m.nb }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followActiveLine()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		if !m.syncController() {
			m.ctrl.Focus(nil)
		}
		m.sync()
		m.rebuildContent()
		m.followActiveLine()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.ctrl.Blur()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	default:
		// Hosts may drive the notebook directly between messages.
	}
	m.sync()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// handle forwards in to the active controller and brings the host back in
// step with the notebook.
func (m *Model) handle(in line.Input) {
	m.cfg.Logger.Debug().Stringer("action", in.Action).Int("line", m.ctrlPos).Msg("input")
	m.ctrl.Handle(in)
	m.sync()
}

func (m *Model) sync() {
	changed := m.syncController()
	ver := m.nb.Version()
	if ver == m.lastVersion && !changed {
		return
	}
	m.lastVersion = ver
	m.rebuildContent()
	m.followActiveLine()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.nb))
	}
}

// syncController rebuilds or refocuses the active controller. It reports
// whether the controller changed.
func (m *Model) syncController() bool {
	pos := m.nb.Active()
	active := m.nb.ActiveLine()

	stale := m.ctrl == nil ||
		pos != m.ctrlPos ||
		active.ID != m.ctrlID ||
		!notebook.Equal(m.ctrl.Payload(), active.Payload)
	if stale {
		if m.ctrl != nil {
			m.ctrl.Blur()
		}
		m.ctrl = line.For(pos, active, m.deps)
		m.ctrlPos = pos
		m.ctrlID = active.ID
	}
	// A pending carry waits for focus.
	if !m.focused {
		return stale
	}
	carry, hasCarry := m.nb.TakePendingCaret()
	if !stale && !hasCarry {
		return false
	}
	if hasCarry {
		m.ctrl.Focus(&carry)
	} else {
		m.ctrl.Focus(nil)
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followActiveLine() {
	pos := m.nb.Active()
	if pos < 0 || pos >= len(m.rows) {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	top := m.rows[pos]
	bottom := m.viewport.TotalLineCount() - 1
	if pos+1 < len(m.rows) {
		bottom = m.rows[pos+1] - 1
	}

	y := m.viewport.YOffset
	if top < y {
		m.viewport.SetYOffset(top)
		return
	}
	if bottom >= y+h {
		off := bottom - h + 1
		if off > top {
			off = top
		}
		m.viewport.SetYOffset(off)
	}
}
