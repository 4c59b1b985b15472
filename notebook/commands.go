package notebook

// Commands is the contract a line controller uses to reach the document. Lines
// never implement cross-line logic themselves.
type Commands interface {
	SelectLine(pos int)
	SelectNextLine(c CaretCarry)
	SelectPrevLine(c CaretCarry)
	CreateLine()
	DeleteLine(c CaretCarry)
	// ExportLine commits a line's content. The kind follows the payload.
	ExportLine(pos int, p Payload)
	// SwitchKind replaces the line with a fresh payload of another kind.
	SwitchKind(pos int, k Kind)
}

var _ Commands = (*Notebook)(nil)
