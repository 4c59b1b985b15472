package notebook

// CaretCarry is the caret hint handed to the line that becomes active after a
// cross-line move: a linear position, or the end of the line.
type CaretCarry struct {
	Pos int
	End bool
}

func CarryTo(pos int) CaretCarry { return CaretCarry{Pos: pos} }

func CarryEnd() CaretCarry { return CaretCarry{End: true} }

// Resolve returns the linear position the carry points to in a line with the
// given total. Positions are clamped into [0, total].
func (c CaretCarry) Resolve(total int) int {
	if c.End || c.Pos > total {
		return total
	}
	if c.Pos < 0 {
		return 0
	}
	return c.Pos
}
