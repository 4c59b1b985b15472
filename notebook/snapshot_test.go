package notebook

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/folio/caret"
)

func TestSnapshot_JSONShape(t *testing.T) {
	s := Snapshot{
		Time:    time.UnixMilli(1700000000123),
		Version: SchemaVersion,
		Lines: []Line{
			{ID: 0, Payload: Text{Subtype: Heading1, Markup: "Hallo", Selection: &caret.Selection{Anchor: 1, Focus: 1}}},
			{ID: 1, Payload: Text{Subtype: Paragraph, Markup: "a&nbsp;b"}},
			{ID: 2, Payload: Image{URL: "data:image/png;base64,AAAA", Alignment: AlignCenter}},
			{ID: 3, Payload: RuleGrid{Style: GridFull, Count: 4}},
		},
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	want := map[string]any{
		"time":    float64(1700000000123),
		"version": "0.0.0",
		"lines": []any{
			map[string]any{"id": float64(0), "type": "txt", "data": map[string]any{
				"subtype": "h1", "html": "Hallo", "selection": []any{float64(1), float64(1)},
			}},
			map[string]any{"id": float64(1), "type": "txt", "data": map[string]any{
				"subtype": "p", "html": "a&nbsp;b",
			}},
			map[string]any{"id": float64(2), "type": "img", "data": map[string]any{
				"url": "data:image/png;base64,AAAA", "alignment": "center",
			}},
			map[string]any{"id": float64(3), "type": "line", "data": map[string]any{
				"subType": "grid", "amountOfLines": float64(4),
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json shape mismatch (-want +got):\n%s", diff)
	}

	var back Snapshot
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_LegacyAndDefaults(t *testing.T) {
	in := `{
		"time": 0,
		"version": "0.0.0",
		"lines": [
			{"id": 0, "type": "txt", "data": {"subType": "h2", "html": "x", "selection": [1, 1]}},
			{"id": 1, "type": "img", "data": {"url": "u"}},
			{"id": 2, "type": "line", "data": {}},
			{"id": 3, "type": "txt"}
		]
	}`
	s, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []Line{
		{ID: 0, Payload: Text{Subtype: Heading2, Markup: "x", Selection: &caret.Selection{Anchor: 1, Focus: 1}}},
		{ID: 1, Payload: Image{URL: "u", Alignment: AlignLeft}},
		{ID: 2, Payload: RuleGrid{Style: GridLines, Count: DefaultRuleCount}},
		{ID: 3, Payload: Text{Subtype: Paragraph}},
	}
	if diff := cmp.Diff(want, s.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown type":      `{"lines":[{"id":0,"type":"video","data":{}}]}`,
		"unknown subtype":   `{"lines":[{"id":0,"type":"txt","data":{"subtype":"h9"}}]}`,
		"bad selection":     `{"lines":[{"id":0,"type":"txt","data":{"selection":[1]}}]}`,
		"negative caret":    `{"lines":[{"id":0,"type":"txt","data":{"selection":[-1,2]}}]}`,
		"bad alignment":     `{"lines":[{"id":0,"type":"img","data":{"alignment":"top"}}]}`,
		"negative count":    `{"lines":[{"id":0,"type":"line","data":{"amountOfLines":-1}}]}`,
		"unknown grid type": `{"lines":[{"id":0,"type":"line","data":{"subType":"dots"}}]}`,
		"not json":          `{`,
	}
	for name, in := range cases {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebook.json")
	n := New(Options{Now: func() time.Time { return time.UnixMilli(42) }})
	n.ExportLine(0, Text{Subtype: Heading1, Markup: "title"})
	n.InsertNewLine()
	n.SwitchKind(1, KindRuleGrid)

	if err := WriteFile(path, n.Export()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff(n.Export(), s); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	m := New(Options{})
	m.Load(s.Lines)
	if got := m.Lines()[1].Kind(); got != KindRuleGrid {
		t.Fatalf("loaded kind=%q", got)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestEncode_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, New(Options{Now: func() time.Time { return time.UnixMilli(0) }}).Export()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"lines\": [") {
		t.Fatalf("expected indented output, got %s", buf.String())
	}
}
