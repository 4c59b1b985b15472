package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/folio/notebook"
)

// Style controls the editor's rendering.
type Style struct {
	// Marker paints the active-line marker in the gutter.
	Marker lipgloss.Style

	Text                         lipgloss.Style
	Heading1, Heading2, Heading3 lipgloss.Style
	// Fallback paints inactive text lines whose spans failed to render.
	Fallback lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Image       lipgloss.Style
	Rule        lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Text:        lipgloss.NewStyle(),
		Heading1:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212")),
		Heading2:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Heading3:    lipgloss.NewStyle().Bold(true),
		Fallback:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Image:       lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Rule:        muted,
		Placeholder: muted.Italic(true),
	}
}

func (s Style) forSubtype(st notebook.Subtype) lipgloss.Style {
	switch st {
	case notebook.Heading1:
		return s.Heading1
	case notebook.Heading2:
		return s.Heading2
	case notebook.Heading3:
		return s.Heading3
	default:
		return s.Text
	}
}
