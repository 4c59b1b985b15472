package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/folio/editor"
	"github.com/iw2rmb/folio/notebook"
)

func TestLoad_MissingFileStartsEmpty(t *testing.T) {
	logger := zerolog.Nop()
	nb, err := load(filepath.Join(t.TempDir(), "missing.json"), &logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if nb.Len() != 1 {
		t.Fatalf("len=%d, want one empty line", nb.Len())
	}
}

func TestLoad_ReadsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	snap := notebook.Snapshot{
		Time:    time.Unix(0, 0),
		Version: notebook.SchemaVersion,
		Lines: []notebook.Line{
			{ID: 7, Payload: notebook.Text{Subtype: notebook.Heading2, Markup: "t"}},
			{ID: 9, Payload: notebook.Image{URL: "u", Alignment: notebook.AlignRight}},
		},
	}
	if err := notebook.WriteFile(path, snap); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	logger := zerolog.Nop()
	nb, err := load(path, &logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if nb.Len() != 2 || nb.ActiveLine().Payload.(notebook.Text).Markup != "t" {
		t.Fatalf("unexpected lines: %+v", nb.Lines())
	}
}

func TestModel_SavedStatusAndQuit(t *testing.T) {
	m := newModel(editor.Config{Path: "notes.json"})
	if !strings.Contains(m.View(), "notes.json") {
		t.Fatalf("status must name the file")
	}

	updated, _ := m.Update(editor.SavedMsg{Path: "notes.json", Err: errors.New("disk full")})
	m = updated.(model)
	if !strings.Contains(m.status, "disk full") {
		t.Fatalf("status=%q", m.status)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("ctrl+q must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+q must return tea.Quit")
	}
}
