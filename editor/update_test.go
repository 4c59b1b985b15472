package editor

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/folio/line"
	"github.com/iw2rmb/folio/notebook"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }

func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{
		Lines:     []notebook.Line{{Payload: text("hello")}},
		Clipboard: cb,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := cb.s; got != "lo" {
		t.Fatalf("clipboard after copy: got %q, want %q", got, "lo")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := cb.s; got != "hello" {
		t.Fatalf("clipboard after cut: got %q, want %q", got, "hello")
	}
	if got := markupAt(t, m, 0); got != "" {
		t.Fatalf("markup after cut: got %q, want empty", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := markupAt(t, m, 0); got != "hello" {
		t.Fatalf("markup after paste: got %q, want %q", got, "hello")
	}

	cb.s = "data:image/gif;base64,R0"
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Notebook().ActiveLine().Kind(); got != notebook.KindImage {
		t.Fatalf("pasting an image uri must make an image line, got %q", got)
	}
}

func TestUpdate_ClipboardFailuresAreIgnored(t *testing.T) {
	cb := &memClipboard{err: errors.New("no clipboard")}
	m := New(Config{Lines: []notebook.Line{{Payload: text("ab")}}, Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := markupAt(t, m, 0); got != "ab" {
		t.Fatalf("a failed cut must keep the text, got %q", got)
	}
}

func TestUpdate_SaveWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := New(Config{
		Path:  path,
		Now:   func() time.Time { return now },
		Lines: []notebook.Line{{Payload: text("a")}, {Payload: notebook.RuleGrid{Style: notebook.GridFull, Count: 1}}},
	})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("save must return a command")
	}
	saved, ok := cmd().(SavedMsg)
	if !ok || saved.Err != nil || saved.Path != path {
		t.Fatalf("saved=%+v", saved)
	}

	snap, err := notebook.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !snap.Time.Equal(now) || snap.Version != notebook.SchemaVersion {
		t.Fatalf("snapshot header: time=%v version=%q", snap.Time, snap.Version)
	}
	if diff := cmp.Diff(m.Notebook().Lines(), snap.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_SaveWithoutPath(t *testing.T) {
	m := New(Config{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	saved := cmd().(SavedMsg)
	if !errors.Is(saved.Err, errNoPath) {
		t.Fatalf("err=%v, want errNoPath", saved.Err)
	}
}

func TestPasteInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
		img  bool
	}{
		{"plain", "plain", false},
		{"a\r\nb\rc", "a\nb\nc", false},
		{"  data:image/png;base64,AA \n", "data:image/png;base64,AA", true},
		{"see data:image/png", "see data:image/png", false},
	}
	for _, tc := range cases {
		in := pasteInput(tc.in)
		if in.Text != tc.want || (in.Action == line.PasteImage) != tc.img {
			t.Fatalf("pasteInput(%q)=%+v", tc.in, in)
		}
	}
}
