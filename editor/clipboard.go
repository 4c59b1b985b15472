package editor

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/folio/line"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

const imageURIPrefix = "data:image/"

// pasteInput classifies pasted text. Data URIs of images become image
// lines; everything else is inserted as plain text.
func pasteInput(s string) line.Input {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if trimmed := strings.TrimSpace(s); strings.HasPrefix(trimmed, imageURIPrefix) {
		return line.Input{Action: line.PasteImage, Text: trimmed}
	}
	return line.Input{Action: line.Paste, Text: s}
}
