package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down   key.Binding
	SelectLeft, SelectRight key.Binding
	SelectAll               key.Binding
	Home, End               key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	// Block lines: image alignment, rule grid style and row count.
	Cycle, Increase, Decrease key.Binding

	Copy, Cut, Paste key.Binding
	Save             key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous line")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next line")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select line")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),

		Cycle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle style")),
		// Terminals vary between reporting alt+arrows and alt+symbols.
		Increase: key.NewBinding(key.WithKeys("alt+up", "alt+="), key.WithHelp("alt+↑", "more rows")),
		Decrease: key.NewBinding(key.WithKeys("alt+down", "alt+-"), key.WithHelp("alt+↓", "fewer rows")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	}
}
