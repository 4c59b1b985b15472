package editor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/folio/keyword"
	"github.com/iw2rmb/folio/notebook"
	"github.com/iw2rmb/folio/span"
)

// Config configures the editor Model.
type Config struct {
	// Notebook to edit. When nil, a new notebook is created from Lines.
	Notebook *notebook.Notebook
	Lines    []notebook.Line
	Now      func() time.Time

	// Path is where Save writes the snapshot. Saving is disabled when empty.
	Path string

	// Rendering options.
	Style Style
	// Transformer renders spans of inactive text lines. Zero value: span.Default.
	Transformer span.Transformer

	// KeyMap defaults to DefaultKeyMap() when left zero.
	KeyMap   KeyMap
	Keywords *keyword.Registry

	// Optional clipboard integration. If nil, copy/cut/paste are no-ops.
	Clipboard Clipboard

	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger

	// OnChange is called after every update that changed the notebook
	// version.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if len(c.KeyMap.Enter.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}
