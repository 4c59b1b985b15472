package notebook

import (
	"fmt"

	"github.com/iw2rmb/folio/caret"
)

// Kind is the wire tag of a line variant.
type Kind string

const (
	KindText     Kind = "txt"
	KindImage    Kind = "img"
	KindRuleGrid Kind = "line"
)

// Kinds returns every line kind in registration order.
func Kinds() []Kind { return []Kind{KindText, KindImage, KindRuleGrid} }

func (k Kind) Valid() bool {
	switch k {
	case KindText, KindImage, KindRuleGrid:
		return true
	}
	return false
}

type Subtype string

const (
	Paragraph Subtype = "p"
	Heading1  Subtype = "h1"
	Heading2  Subtype = "h2"
	Heading3  Subtype = "h3"
)

func (s Subtype) Valid() bool {
	switch s {
	case Paragraph, Heading1, Heading2, Heading3:
		return true
	}
	return false
}

// IsHeading reports whether s is one of the heading levels.
func (s Subtype) IsHeading() bool { return s.Valid() && s != Paragraph }

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// Next returns the following alignment, wrapping around.
func (a Alignment) Next() Alignment {
	switch a {
	case AlignLeft:
		return AlignCenter
	case AlignCenter:
		return AlignRight
	default:
		return AlignLeft
	}
}

type GridStyle string

const (
	GridLines GridStyle = "lines"
	GridFull  GridStyle = "grid"
)

func (g GridStyle) Valid() bool { return g == GridLines || g == GridFull }

// Next toggles between ruled lines and a full grid.
func (g GridStyle) Next() GridStyle {
	if g == GridLines {
		return GridFull
	}
	return GridLines
}

// DefaultRuleCount is the number of rows of a fresh rule grid.
const DefaultRuleCount = 2

// Payload is the variant-specific content of a line. The set of variants is
// closed: Text, Image and RuleGrid.
type Payload interface {
	Kind() Kind
	clone() Payload
}

// Text is a paragraph or heading. Markup is the raw editable source, never the
// rendered form.
type Text struct {
	Subtype Subtype
	Markup  string
	// Selection is the last committed caret or selection, if any.
	Selection *caret.Selection
}

func (Text) Kind() Kind { return KindText }

func (t Text) clone() Payload {
	if t.Selection != nil {
		sel := *t.Selection
		t.Selection = &sel
	}
	return t
}

type Image struct {
	URL       string
	Alignment Alignment
}

func (Image) Kind() Kind { return KindImage }

func (i Image) clone() Payload { return i }

// RuleGrid is a block of ruled rows, either plain lines or a grid.
type RuleGrid struct {
	Style GridStyle
	Count int
}

func (RuleGrid) Kind() Kind { return KindRuleGrid }

func (g RuleGrid) clone() Payload { return g }

// Validate reports the first field of p outside its variant's domain.
func Validate(p Payload) error {
	switch v := p.(type) {
	case Text:
		if !v.Subtype.Valid() {
			return fmt.Errorf("unknown text subtype %q", v.Subtype)
		}
		if v.Selection != nil && v.Selection.Start() < 0 {
			return fmt.Errorf("invalid selection %+v", *v.Selection)
		}
	case Image:
		if !v.Alignment.Valid() {
			return fmt.Errorf("unknown image alignment %q", v.Alignment)
		}
	case RuleGrid:
		if !v.Style.Valid() {
			return fmt.Errorf("unknown rule grid style %q", v.Style)
		}
		if v.Count < 0 {
			return fmt.Errorf("negative amount of lines %d", v.Count)
		}
	default:
		return fmt.Errorf("unsupported payload %T", p)
	}
	return nil
}

// DefaultPayload returns the payload of a fresh line of kind k. Unknown kinds
// yield an empty paragraph.
func DefaultPayload(k Kind) Payload {
	switch k {
	case KindImage:
		return Image{Alignment: AlignLeft}
	case KindRuleGrid:
		return RuleGrid{Style: GridLines, Count: DefaultRuleCount}
	default:
		return Text{Subtype: Paragraph}
	}
}

// Line is one addressable unit of a notebook.
type Line struct {
	ID      int
	Payload Payload
}

func (l Line) Kind() Kind {
	if l.Payload == nil {
		return KindText
	}
	return l.Payload.Kind()
}

func (l Line) clone() Line {
	if l.Payload == nil {
		l.Payload = DefaultPayload(KindText)
		return l
	}
	l.Payload = l.Payload.clone()
	return l
}

// Equal reports whether a and b hold the same variant and content.
func Equal(a, b Payload) bool {
	switch x := a.(type) {
	case Text:
		y, ok := b.(Text)
		if !ok || x.Subtype != y.Subtype || x.Markup != y.Markup {
			return false
		}
		if x.Selection == nil || y.Selection == nil {
			return x.Selection == y.Selection
		}
		return *x.Selection == *y.Selection
	case Image:
		y, ok := b.(Image)
		return ok && x == y
	case RuleGrid:
		y, ok := b.(RuleGrid)
		return ok && x == y
	}
	return false
}
