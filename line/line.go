// Package line implements the line-local controllers of a notebook.
//
// A controller translates input actions on the active line into native
// surface edits and notebook commands. Every Handle call is one synchronous
// transition: content changes are committed through ExportLine before it
// returns, and cross-line moves are delegated to the notebook.
package line

import (
	"github.com/rs/zerolog"

	"github.com/iw2rmb/folio/keyword"
	"github.com/iw2rmb/folio/notebook"
	"github.com/iw2rmb/folio/span"
	"github.com/iw2rmb/folio/surface"
)

// Editable is a surface with host-native editing.
type Editable interface {
	surface.Surface
	InsertText(s string)
	DeleteSelection() bool
	DeleteBackward()
	DeleteForward()
	Move(dir surface.MoveDir, extend bool)
	SelectAll()
	Blur()
	// Cells is the number of editing units: graphemes and void elements.
	Cells() int
}

var _ Editable = (*surface.Memory)(nil)

// Deps are the collaborators a controller works with.
type Deps struct {
	Commands notebook.Commands

	// Keywords defaults to DefaultKeywords().
	Keywords *keyword.Registry
	// Transformer renders spans of inactive text lines.
	Transformer span.Transformer
	// NewSurface creates the surface backing a text line. Default: an
	// in-memory surface.
	NewSurface func(markup string) (Editable, error)
	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger
}

// DefaultKeywords returns the heading keywords plus one outer keyword per
// line kind.
func DefaultKeywords() *keyword.Registry {
	kinds := notebook.Kinds()
	tags := make([]string, 0, len(kinds))
	for _, k := range kinds {
		tags = append(tags, string(k))
	}
	return keyword.New(keyword.Headings, tags...)
}

func (d Deps) withDefaults() Deps {
	if d.Keywords == nil {
		d.Keywords = DefaultKeywords()
	}
	if d.NewSurface == nil {
		d.NewSurface = func(markup string) (Editable, error) { return surface.NewMemory(markup) }
	}
	if d.Logger == nil {
		nop := zerolog.Nop()
		d.Logger = &nop
	}
	return d
}

// Controller drives one line while it is displayed.
type Controller interface {
	// Focus makes the line editable and places the caret from carry, or from
	// the last committed selection when carry is nil.
	Focus(carry *notebook.CaretCarry)
	Blur()
	Handle(in Input)
	Display() Display
	// Payload returns the content the controller holds. A host rebuilds the
	// controller when the notebook's payload for the line differs from it.
	Payload() notebook.Payload
}

// For returns the controller for the line at pos.
func For(pos int, l notebook.Line, deps Deps) Controller {
	deps = deps.withDefaults()
	switch p := l.Payload.(type) {
	case notebook.Image:
		return newImageLine(pos, p, deps)
	case notebook.RuleGrid:
		return newRuleGridLine(pos, p, deps)
	case notebook.Text:
		return newTextLine(pos, p, deps)
	default:
		return newTextLine(pos, notebook.DefaultPayload(notebook.KindText).(notebook.Text), deps)
	}
}

// Display is what a host paints for one line.
type Display struct {
	Kind    notebook.Kind
	Focused bool

	// Text lines. Markup is the raw source while focused and the rendered
	// form otherwise; Text is its visible text.
	Subtype notebook.Subtype
	Markup  string
	Text    string
	// Before, Selected and After split Text around the selection of a
	// focused line. The caret rests between Selected and After.
	Before, Selected, After string
	// RenderErr is the span failure that made an inactive line fall back to
	// its raw markup.
	RenderErr error

	Image notebook.Image
	Grid  notebook.RuleGrid
}

// navigate applies the arrow, Enter and Backspace handling shared by block
// lines (images and rule grids). It reports whether in was consumed.
func navigate(cmds notebook.Commands, in Input) bool {
	switch in.Action {
	case Up, Left:
		cmds.SelectPrevLine(notebook.CarryEnd())
	case Down:
		cmds.SelectNextLine(notebook.CarryEnd())
	case Right:
		cmds.SelectNextLine(notebook.CarryTo(0))
	case Enter:
		cmds.CreateLine()
	case Backspace, Delete:
		cmds.DeleteLine(notebook.CarryEnd())
	default:
		return false
	}
	return true
}
