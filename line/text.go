package line

import (
	"errors"
	"strings"

	"github.com/iw2rmb/folio/caret"
	"github.com/iw2rmb/folio/internal/grapheme"
	"github.com/iw2rmb/folio/keyword"
	"github.com/iw2rmb/folio/notebook"
	"github.com/iw2rmb/folio/span"
	"github.com/iw2rmb/folio/surface"
)

type textLine struct {
	pos  int
	deps Deps

	subtype notebook.Subtype
	markup  string // cached raw source
	sel     *caret.Selection

	surf    Editable
	focused bool

	rendered  string
	renderErr error
}

func newTextLine(pos int, t notebook.Text, deps Deps) *textLine {
	l := &textLine{
		pos:     pos,
		deps:    deps,
		subtype: t.Subtype,
		markup:  t.Markup,
	}
	if !l.subtype.Valid() {
		l.subtype = notebook.Paragraph
	}
	if t.Selection != nil {
		sel := *t.Selection
		l.sel = &sel
	}

	surf, err := deps.NewSurface(t.Markup)
	if err != nil {
		deps.Logger.Warn().Err(err).Int("line", pos).Msg("cannot parse line markup")
		surf, _ = deps.NewSurface("")
	}
	l.surf = surf
	l.surf.Blur()
	l.render()
	return l
}

func (l *textLine) Payload() notebook.Payload {
	t := notebook.Text{Subtype: l.subtype, Markup: l.markup}
	if l.sel != nil {
		sel := *l.sel
		t.Selection = &sel
	}
	return t
}

func (l *textLine) Focus(carry *notebook.CaretCarry) {
	if err := l.surf.SetMarkup(l.markup); err != nil {
		l.deps.Logger.Warn().Err(err).Int("line", l.pos).Msg("cannot restore line markup")
	}
	root := l.surf.Root()
	switch {
	case carry != nil:
		caret.SetCaret(l.surf, carry.Resolve(caret.Total(root)))
	case l.sel != nil:
		caret.Apply(l.surf, *l.sel)
	default:
		caret.SetCaretEnd(l.surf)
	}
	l.focused = true
}

func (l *textLine) Blur() {
	l.surf.Blur()
	l.focused = false
	l.render()
}

func (l *textLine) Handle(in Input) {
	cmds := l.deps.Commands

	switch in.Action {
	case Enter:
		l.commit()
		cmds.CreateLine()
	case Up:
		l.commit()
		cmds.SelectPrevLine(notebook.CarryTo(caret.Position(l.surf)))
	case Down:
		l.commit()
		cmds.SelectNextLine(notebook.CarryTo(caret.Position(l.surf)))
	case Left:
		if caret.AtStart(l.surf) {
			l.commit()
			cmds.SelectPrevLine(notebook.CarryEnd())
			return
		}
		l.surf.Move(surface.DirLeft, false)
		l.commit()
	case Right:
		if caret.AtEnd(l.surf) {
			l.commit()
			cmds.SelectNextLine(notebook.CarryTo(0))
			return
		}
		l.surf.Move(surface.DirRight, false)
		l.commit()
	case Home:
		l.surf.Move(surface.DirHome, false)
		l.commit()
	case End:
		l.surf.Move(surface.DirEnd, false)
		l.commit()
	case SelectLeft:
		l.surf.Move(surface.DirLeft, true)
		l.commit()
	case SelectRight:
		l.surf.Move(surface.DirRight, true)
		l.commit()
	case SelectAll:
		l.surf.SelectAll()
		l.commit()
	case Backspace:
		l.backspace()
	case Delete:
		l.surf.DeleteForward()
		l.commit()
	case Insert:
		l.insert(in.Text)
	case Paste:
		l.surf.InsertText(singleLine(in.Text))
		l.commit()
	case PasteImage:
		cmds.ExportLine(l.pos, notebook.Image{URL: in.Text, Alignment: notebook.AlignLeft})
	}
}

func (l *textLine) backspace() {
	if sel, ok := caret.Read(l.surf); ok && !sel.Collapsed() {
		l.surf.DeleteSelection()
		l.commit()
		return
	}
	if !caret.AtStart(l.surf) {
		l.surf.DeleteBackward()
		l.commit()
		return
	}
	switch {
	case l.subtype.IsHeading():
		l.subtype = notebook.Paragraph
		l.commit()
	case l.surf.Text() == "":
		l.deps.Commands.DeleteLine(notebook.CarryEnd())
	}
}

// insert types s and checks whether it completed a line-start keyword.
func (l *textLine) insert(s string) {
	prev := l.surf.Text()
	l.surf.InsertText(singleLine(s))
	cur := l.surf.Text()

	m, ok := l.deps.Keywords.Detect(prev, cur)
	if !ok {
		l.commit()
		return
	}
	l.deps.Logger.Debug().Str("keyword", m.Keyword).Str("value", m.Value).Int("line", l.pos).Msg("keyword fired")

	switch m.Scope {
	case keyword.Inner:
		if !l.stripKeyword(m.Keyword, cur) {
			l.deps.Logger.Warn().Str("keyword", m.Keyword).Int("line", l.pos).Msg("cannot strip keyword, ignoring it")
			l.commit()
			return
		}
		l.subtype = notebook.Subtype(m.Value)
		caret.SetCaret(l.surf, 0)
		l.commit()
	case keyword.Outer:
		l.deps.Commands.SwitchKind(l.pos, notebook.Kind(m.Value))
	}
}

// stripKeyword removes a fired keyword and its separator. The raw markup is
// cut directly when it starts with the keyword; otherwise (formatting around
// the keyword, leading spaces) the leading cells are deleted on the surface.
// On failure the surface is left as it was.
func (l *textLine) stripKeyword(kw, text string) bool {
	if markup, ok := keyword.StripMarkup(l.surf.Markup(), kw); ok {
		if err := l.surf.SetMarkup(markup); err != nil {
			l.deps.Logger.Warn().Err(err).Int("line", l.pos).Msg("cannot apply keyword")
			return false
		}
		return true
	}

	n := keyword.Lead(text, kw)
	if n == 0 || n > l.surf.Cells() {
		return false
	}
	before := l.surf.Markup()
	sel, hasSel := caret.Read(l.surf)

	l.surf.Move(surface.DirHome, false)
	for i := 0; i < n; i++ {
		l.surf.Move(surface.DirRight, true)
	}
	l.surf.DeleteSelection()
	if l.surf.Text() == grapheme.Slice(text, n, grapheme.Count(text)) {
		return true
	}

	if err := l.surf.SetMarkup(before); err == nil && hasSel {
		caret.Apply(l.surf, sel)
	}
	return false
}

// commit stores the surface content and selection and exports them.
func (l *textLine) commit() {
	l.markup = l.surf.Markup()
	if sel, ok := caret.Read(l.surf); ok {
		l.sel = &sel
	}
	l.deps.Commands.ExportLine(l.pos, l.Payload())
}

// render computes the display form of the inactive line.
func (l *textLine) render() {
	l.renderErr = nil
	out, err := l.deps.Transformer.Transform(surface.MarkupText(l.markup), l.markup)
	if err != nil {
		var perr *span.ParseError
		if errors.As(err, &perr) {
			l.deps.Logger.Warn().Err(err).Int("line", l.pos).Msg("span render failed, showing raw markup")
		} else {
			l.deps.Logger.Error().Err(err).Int("line", l.pos).Msg("span render failed")
		}
		l.renderErr = err
		out = l.markup
	}
	l.rendered = out
}

func (l *textLine) Display() Display {
	d := Display{
		Kind:    notebook.KindText,
		Focused: l.focused,
		Subtype: l.subtype,
	}
	if !l.focused {
		d.Markup = l.rendered
		d.Text = surface.MarkupText(l.rendered)
		d.RenderErr = l.renderErr
		return d
	}

	d.Markup = l.surf.Markup()
	d.Text = l.surf.Text()
	d.Before = d.Text
	anchor, focus, ok := l.surf.Selection()
	if !ok {
		return d
	}
	root := l.surf.Root()
	a := grapheme.Count(caret.TextBeforePoint(root, anchor))
	f := grapheme.Count(caret.TextBeforePoint(root, focus))
	start, end := a, f
	if start > end {
		start, end = end, start
	}
	d.Before = grapheme.Slice(d.Text, 0, start)
	d.Selected = grapheme.Slice(d.Text, start, end)
	d.After = grapheme.Slice(d.Text, end, grapheme.Count(d.Text))
	return d
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", " ")
}
