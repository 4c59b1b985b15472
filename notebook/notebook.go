package notebook

import "time"

// SchemaVersion is written into every exported snapshot.
const SchemaVersion = "0.0.0"

type Options struct {
	Now   func() time.Time // default: time.Now
	Lines []Line           // initial content; ids are reassigned
}

// Notebook owns the ordered lines, the active line and the pending caret
// carry. The zero value is not usable; use New.
type Notebook struct {
	lines   []Line
	active  int
	nextID  int
	pending *CaretCarry
	version uint64

	now func() time.Time
}

// New returns a notebook holding opt.Lines, or one empty paragraph.
func New(opt Options) *Notebook {
	n := &Notebook{now: opt.Now}
	if n.now == nil {
		n.now = time.Now
	}
	n.replace(opt.Lines)
	return n
}

// Version increases on every effective change of lines, active line or
// pending carry.
func (n *Notebook) Version() uint64 { return n.version }

func (n *Notebook) Len() int { return len(n.lines) }

func (n *Notebook) Active() int { return n.active }

// Line returns a copy of the line at pos.
func (n *Notebook) Line(pos int) (Line, bool) {
	if pos < 0 || pos >= len(n.lines) {
		return Line{}, false
	}
	return n.lines[pos].clone(), true
}

func (n *Notebook) ActiveLine() Line { return n.lines[n.active].clone() }

// Lines returns a copy of all lines in display order.
func (n *Notebook) Lines() []Line {
	out := make([]Line, len(n.lines))
	for i, l := range n.lines {
		out[i] = l.clone()
	}
	return out
}

func (n *Notebook) IsFirst(pos int) bool { return pos == 0 }

func (n *Notebook) IsLast(pos int) bool { return pos == len(n.lines)-1 }

// PendingCaret returns the carry stored by the last cross-line move.
func (n *Notebook) PendingCaret() (CaretCarry, bool) {
	if n.pending == nil {
		return CaretCarry{}, false
	}
	return *n.pending, true
}

// TakePendingCaret returns and clears the pending carry.
func (n *Notebook) TakePendingCaret() (CaretCarry, bool) {
	c, ok := n.PendingCaret()
	if ok {
		n.pending = nil
		n.version++
	}
	return c, ok
}

// InsertNewLine inserts an empty paragraph after the active line and makes it
// active.
func (n *Notebook) InsertNewLine() {
	l := Line{ID: n.issueID(), Payload: DefaultPayload(KindText)}
	at := n.active + 1
	n.lines = append(n.lines, Line{})
	copy(n.lines[at+1:], n.lines[at:])
	n.lines[at] = l
	n.active = at
	n.pending = nil
	n.version++
}

// CreateLine is InsertNewLine under its command name.
func (n *Notebook) CreateLine() { n.InsertNewLine() }

// SelectNextLine activates the following line and stores c for it. It is a
// no-op on the last line.
func (n *Notebook) SelectNextLine(c CaretCarry) {
	if n.IsLast(n.active) {
		return
	}
	n.active++
	n.pending = &c
	n.version++
}

// SelectPreviousLine activates the preceding line and stores c for it. It is
// a no-op on the first line.
func (n *Notebook) SelectPreviousLine(c CaretCarry) {
	if n.IsFirst(n.active) {
		return
	}
	n.active--
	n.pending = &c
	n.version++
}

func (n *Notebook) SelectPrevLine(c CaretCarry) { n.SelectPreviousLine(c) }

// SelectLine activates the line at pos without a carry, as a pointer focus
// does. Out-of-range positions are ignored.
func (n *Notebook) SelectLine(pos int) {
	if pos < 0 || pos >= len(n.lines) || pos == n.active {
		return
	}
	n.active = pos
	n.version++
}

// DeleteLine removes the active line and activates the one before it with
// carry c. The first line is never deleted this way.
func (n *Notebook) DeleteLine(c CaretCarry) {
	if n.active == 0 {
		return
	}
	n.lines = append(n.lines[:n.active], n.lines[n.active+1:]...)
	n.active--
	n.pending = &c
	n.version++
}

// ExportLine commits p as the content of the line at pos, keeping its id.
// Payloads that fail Validate are ignored.
func (n *Notebook) ExportLine(pos int, p Payload) {
	if pos < 0 || pos >= len(n.lines) || Validate(p) != nil {
		return
	}
	if Equal(n.lines[pos].Payload, p) {
		return
	}
	n.lines[pos].Payload = p.clone()
	n.version++
}

// SwitchKind replaces the line at pos with a fresh line of kind k.
func (n *Notebook) SwitchKind(pos int, k Kind) {
	if !k.Valid() {
		return
	}
	n.ExportLine(pos, DefaultPayload(k))
}

// Export returns the current content as a snapshot.
func (n *Notebook) Export() Snapshot {
	return Snapshot{
		Time:    n.now(),
		Version: SchemaVersion,
		Lines:   n.Lines(),
	}
}

// Load replaces all lines. Incoming ids are ignored and fresh ones are issued
// from the running counter, so ids are never reused within a session.
func (n *Notebook) Load(lines []Line) {
	n.replace(lines)
	n.version++
}

func (n *Notebook) replace(lines []Line) {
	n.lines = make([]Line, 0, len(lines))
	for _, l := range lines {
		l = l.clone()
		l.ID = n.issueID()
		n.lines = append(n.lines, l)
	}
	if len(n.lines) == 0 {
		n.lines = append(n.lines, Line{ID: n.issueID(), Payload: DefaultPayload(KindText)})
	}
	n.active = 0
	n.pending = nil
}

func (n *Notebook) issueID() int {
	id := n.nextID
	n.nextID++
	return id
}
