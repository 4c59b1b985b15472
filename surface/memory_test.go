package surface

import (
	"testing"

	"github.com/sanity-io/litter"
)

func mustMemory(t *testing.T, markup string) *Memory {
	t.Helper()
	m, err := NewMemory(markup)
	if err != nil {
		t.Fatalf("NewMemory(%q): %v", markup, err)
	}
	return m
}

func TestMemory_InsertAndDeleteBackward(t *testing.T) {
	m := mustMemory(t, "")
	if m.Version() != 0 {
		t.Fatalf("initial version=%d, want 0", m.Version())
	}

	m.InsertText("abc")
	if got := m.Markup(); got != "abc" {
		t.Fatalf("markup=%q, want %q", got, "abc")
	}
	anchor, focus, ok := m.Selection()
	if !ok || anchor != focus {
		t.Fatalf("expected collapsed selection, got %v %v %v", anchor, focus, ok)
	}
	if focus.Node != m.Root().Children[0] || focus.Offset != 3 {
		t.Fatalf("caret=%s, want end of text", litter.Sdump(focus.Offset))
	}
	if m.Version() != 1 {
		t.Fatalf("version=%d, want 1", m.Version())
	}

	m.DeleteBackward()
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after backspace=%q, want %q", got, "ab")
	}

	m.Move(DirHome, false)
	m.DeleteBackward()
	if got := m.Text(); got != "ab" {
		t.Fatalf("backspace at start must be a no-op, got %q", got)
	}
}

func TestMemory_ExtendThenTypeReplacesSelection(t *testing.T) {
	m := mustMemory(t, "ab")
	m.Move(DirHome, false)
	m.Move(DirRight, true)

	anchor, focus, _ := m.Selection()
	if anchor.Offset != 0 || focus.Offset != 1 {
		t.Fatalf("selection offsets=(%d,%d), want (0,1)", anchor.Offset, focus.Offset)
	}

	m.InsertText("X")
	if got := m.Markup(); got != "Xb" {
		t.Fatalf("markup=%q, want %q", got, "Xb")
	}
}

func TestMemory_DeleteAcrossElementsNormalizes(t *testing.T) {
	m := mustMemory(t, "a<b>bc</b>d")
	m.Move(DirHome, false)
	m.Move(DirRight, false)
	m.Move(DirRight, true)
	m.Move(DirRight, true)

	if !m.DeleteSelection() {
		t.Fatalf("expected selection to be deleted")
	}
	if got := m.Markup(); got != "ad" {
		t.Fatalf("markup=%q, want %q\ntree: %s", got, "ad", litter.Sdump(m.Root()))
	}
	if n := len(m.Root().Children); n != 1 {
		t.Fatalf("children=%d, want merged single text node", n)
	}
	_, focus, _ := m.Selection()
	if focus.Node != m.Root().Children[0] || focus.Offset != 1 {
		t.Fatalf("caret offset=%d, want 1", focus.Offset)
	}
}

func TestMemory_DeleteForwardRemovesLineBreak(t *testing.T) {
	m := mustMemory(t, "a<br>b")
	if got := m.Cells(); got != 3 {
		t.Fatalf("cells=%d, want 3", got)
	}
	m.Move(DirHome, false)
	m.Move(DirRight, false)
	m.DeleteForward()
	if got := m.Markup(); got != "ab" {
		t.Fatalf("markup=%q, want %q", got, "ab")
	}

	m.Move(DirEnd, false)
	before := m.Version()
	m.DeleteForward()
	if m.Version() != before {
		t.Fatalf("delete at end must not bump version")
	}
}

func TestMemory_SelectAllAndDelete(t *testing.T) {
	m := mustMemory(t, "a<b>bc</b>d")
	m.SelectAll()
	m.DeleteBackward()
	if got := m.Markup(); got != "" {
		t.Fatalf("markup=%q, want empty", got)
	}
	if len(m.Root().Children) != 0 {
		t.Fatalf("expected empty tree, got %s", litter.Sdump(m.Root().Children))
	}
	m.InsertText("z")
	if got := m.Markup(); got != "z" {
		t.Fatalf("markup after typing into empty tree=%q", got)
	}
}

func TestMemory_SetSelectionKeepsDirectionAndClamps(t *testing.T) {
	m := mustMemory(t, "abcd")
	text := m.Root().Children[0]

	m.SetSelection(Point{Node: text, Offset: 3}, Point{Node: text, Offset: 1})
	anchor, focus, ok := m.Selection()
	if !ok || anchor.Offset != 3 || focus.Offset != 1 {
		t.Fatalf("selection=(%d,%d), want backward (3,1)", anchor.Offset, focus.Offset)
	}
	v := m.Version()
	m.SetSelection(Point{Node: text, Offset: 3}, Point{Node: text, Offset: 1})
	if m.Version() != v {
		t.Fatalf("same selection must not bump version")
	}

	m.SetSelection(Point{Node: text, Offset: 99}, Point{Node: NewText("x"), Offset: 1})
	anchor, focus, _ = m.Selection()
	if anchor.Offset != 4 {
		t.Fatalf("anchor offset=%d, want clamped 4", anchor.Offset)
	}
	if focus.Node != m.Root() || focus.Offset != 0 {
		t.Fatalf("foreign focus must clamp to the root start")
	}

	// Collapsing a backward selection moves toward the requested side.
	m.SetSelection(Point{Node: text, Offset: 3}, Point{Node: text, Offset: 1})
	m.Move(DirRight, false)
	_, focus, _ = m.Selection()
	if focus.Offset != 3 {
		t.Fatalf("collapse right offset=%d, want 3", focus.Offset)
	}
}

func TestMemory_SetMarkupResetsSelection(t *testing.T) {
	m := mustMemory(t, "abc")
	m.Move(DirEnd, false)
	if err := m.SetMarkup("<b>x</b>"); err != nil {
		t.Fatalf("SetMarkup: %v", err)
	}
	anchor, focus, ok := m.Selection()
	if !ok || anchor.Node != m.Root() || focus.Node != m.Root() || focus.Offset != 0 {
		t.Fatalf("selection after SetMarkup must collapse at the root start")
	}

	m.Blur()
	if _, _, ok := m.Selection(); ok {
		t.Fatalf("expected no selection after Blur")
	}
}
