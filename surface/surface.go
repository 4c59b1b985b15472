package surface

// Surface is the host capability backing one line: a rendered content tree
// with a native selection and raw markup access.
//
// Implementations own the tree returned by Root; callers must re-read Root
// after SetMarkup.
type Surface interface {
	Root() *Node

	// Selection returns the native anchor and focus. ok is false when the
	// host holds no selection inside this surface.
	Selection() (anchor, focus Point, ok bool)
	// SetSelection replaces the native selection. anchor may come after focus
	// in document order; the direction is preserved.
	SetSelection(anchor, focus Point)

	Markup() string
	SetMarkup(markup string) error

	// Text returns the user-visible text (innerText equivalent).
	Text() string
}
