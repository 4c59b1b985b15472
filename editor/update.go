package editor

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/folio/line"
	"github.com/iw2rmb/folio/notebook"
)

var errNoPath = errors.New("editor: no save path configured")

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.handle(pasteInput(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Save):
		return m, m.save()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	case key.Matches(msg, km.Left):
		m.handle(line.Input{Action: line.Left})
	case key.Matches(msg, km.Right):
		m.handle(line.Input{Action: line.Right})
	case key.Matches(msg, km.Up):
		m.handle(line.Input{Action: line.Up})
	case key.Matches(msg, km.Down):
		m.handle(line.Input{Action: line.Down})
	case key.Matches(msg, km.SelectLeft):
		m.handle(line.Input{Action: line.SelectLeft})
	case key.Matches(msg, km.SelectRight):
		m.handle(line.Input{Action: line.SelectRight})
	case key.Matches(msg, km.SelectAll):
		m.handle(line.Input{Action: line.SelectAll})
	case key.Matches(msg, km.Home):
		m.handle(line.Input{Action: line.Home})
	case key.Matches(msg, km.End):
		m.handle(line.Input{Action: line.End})

	case key.Matches(msg, km.Backspace):
		m.handle(line.Input{Action: line.Backspace})
	case key.Matches(msg, km.Delete):
		m.handle(line.Input{Action: line.Delete})
	case key.Matches(msg, km.Enter):
		m.handle(line.Input{Action: line.Enter})

	case key.Matches(msg, km.Cycle):
		m.handle(line.Input{Action: line.Cycle})
	case key.Matches(msg, km.Increase):
		m.handle(line.Input{Action: line.Increase})
	case key.Matches(msg, km.Decrease):
		m.handle(line.Input{Action: line.Decrease})

	default:
		if msg.Type == tea.KeySpace {
			m.handle(line.Input{Action: line.Insert, Text: " "})
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.handle(line.Input{Action: line.Insert, Text: string(msg.Runes)})
		}
	}

	return m, nil
}

// save writes the notebook snapshot to the configured path. The result is
// reported as a SavedMsg.
func (m Model) save() tea.Cmd {
	path := m.cfg.Path
	err := errNoPath
	if path != "" {
		err = notebook.WriteFile(path, m.nb.Export())
	}
	if err != nil {
		m.cfg.Logger.Error().Err(err).Str("path", path).Msg("save failed")
	} else {
		m.cfg.Logger.Info().Str("path", path).Uint64("version", m.nb.Version()).Msg("saved")
	}
	return func() tea.Msg { return SavedMsg{Path: path, Err: err} }
}

func (m Model) selectedText() string {
	if m.ctrl == nil {
		return ""
	}
	d := m.ctrl.Display()
	if d.Kind != notebook.KindText || !d.Focused {
		return ""
	}
	return d.Selected
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.cfg.Logger.Warn().Err(err).Msg("clipboard write failed")
	}
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.cfg.Logger.Warn().Err(err).Msg("clipboard write failed")
		return
	}
	m.handle(line.Input{Action: line.Backspace})
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Warn().Err(err).Msg("clipboard read failed")
		return
	}
	if s == "" {
		return
	}
	m.handle(pasteInput(s))
}
