package editor

import "github.com/iw2rmb/folio/notebook"

type ChangeEvent struct {
	Version uint64
	Active  int

	// v0: simplest payload; host can export a snapshot if needed.
	Lines []notebook.Line
}

func buildChangeEvent(nb *notebook.Notebook) ChangeEvent {
	return ChangeEvent{
		Version: nb.Version(),
		Active:  nb.Active(),
		Lines:   nb.Lines(),
	}
}

// SavedMsg reports the outcome of a save.
type SavedMsg struct {
	Path string
	Err  error
}
