package line

import (
	"strings"

	"github.com/iw2rmb/folio/notebook"
)

type imageLine struct {
	pos     int
	deps    Deps
	img     notebook.Image
	focused bool
}

func newImageLine(pos int, img notebook.Image, deps Deps) *imageLine {
	if !img.Alignment.Valid() {
		img.Alignment = notebook.AlignLeft
	}
	return &imageLine{pos: pos, deps: deps, img: img}
}

func (l *imageLine) Payload() notebook.Payload { return l.img }

func (l *imageLine) Focus(*notebook.CaretCarry) { l.focused = true }

func (l *imageLine) Blur() { l.focused = false }

func (l *imageLine) Handle(in Input) {
	if navigate(l.deps.Commands, in) {
		return
	}
	switch in.Action {
	case Cycle:
		l.img.Alignment = l.img.Alignment.Next()
	case PasteImage, Paste:
		url := strings.TrimSpace(in.Text)
		if url == "" {
			return
		}
		l.img.URL = url
	default:
		return
	}
	l.deps.Commands.ExportLine(l.pos, l.img)
}

func (l *imageLine) Display() Display {
	return Display{Kind: notebook.KindImage, Focused: l.focused, Image: l.img}
}

type ruleGridLine struct {
	pos     int
	deps    Deps
	grid    notebook.RuleGrid
	focused bool
}

func newRuleGridLine(pos int, g notebook.RuleGrid, deps Deps) *ruleGridLine {
	if !g.Style.Valid() {
		g.Style = notebook.GridLines
	}
	if g.Count < 0 {
		g.Count = 0
	}
	return &ruleGridLine{pos: pos, deps: deps, grid: g}
}

func (l *ruleGridLine) Payload() notebook.Payload { return l.grid }

func (l *ruleGridLine) Focus(*notebook.CaretCarry) { l.focused = true }

func (l *ruleGridLine) Blur() { l.focused = false }

func (l *ruleGridLine) Handle(in Input) {
	if navigate(l.deps.Commands, in) {
		return
	}
	switch in.Action {
	case Cycle:
		l.grid.Style = l.grid.Style.Next()
	case Increase:
		l.grid.Count++
	case Decrease:
		if l.grid.Count == 0 {
			return
		}
		l.grid.Count--
	case PasteImage:
		l.deps.Commands.ExportLine(l.pos, notebook.Image{URL: in.Text, Alignment: notebook.AlignLeft})
		return
	default:
		return
	}
	l.deps.Commands.ExportLine(l.pos, l.grid)
}

func (l *ruleGridLine) Display() Display {
	return Display{Kind: notebook.KindRuleGrid, Focused: l.focused, Grid: l.grid}
}
