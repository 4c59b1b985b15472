package line

// Action identifies the semantic input a line controller handles. Hosts map
// their raw key and pointer events onto actions.
type Action uint8

const (
	Insert Action = iota // typed text; runs keyword detection
	Paste                // literal text, never a keyword
	PasteImage           // Text carries an image URL or data URI
	Enter
	Backspace
	Delete
	Up
	Down
	Left
	Right
	Home
	End
	SelectLeft
	SelectRight
	SelectAll
	Cycle // next alignment or grid style
	Increase
	Decrease
)

var actionNames = [...]string{
	Insert:      "insert",
	Paste:       "paste",
	PasteImage:  "paste-image",
	Enter:       "enter",
	Backspace:   "backspace",
	Delete:      "delete",
	Up:          "up",
	Down:        "down",
	Left:        "left",
	Right:       "right",
	Home:        "home",
	End:         "end",
	SelectLeft:  "select-left",
	SelectRight: "select-right",
	SelectAll:   "select-all",
	Cycle:       "cycle",
	Increase:    "increase",
	Decrease:    "decrease",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Input is one input event.
type Input struct {
	Action Action
	Text   string // Insert, Paste, PasteImage
}
