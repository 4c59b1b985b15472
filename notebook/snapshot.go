package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iw2rmb/folio/caret"
)

// Snapshot is the exported form of a notebook.
type Snapshot struct {
	Time    time.Time
	Version string
	Lines   []Line
}

type wireSnapshot struct {
	Time    int64      `json:"time"`
	Version string     `json:"version"`
	Lines   []wireLine `json:"lines"`
}

type wireLine struct {
	ID   int             `json:"id"`
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data"`
}

type wireText struct {
	Subtype   Subtype `json:"subtype"`
	HTML      string  `json:"html"`
	Selection []int   `json:"selection,omitempty"`
}

// wireTextIn also accepts the camel-cased subType key of older files.
type wireTextIn struct {
	Subtype   Subtype `json:"subtype"`
	SubType   Subtype `json:"subType"`
	HTML      string  `json:"html"`
	Selection []int   `json:"selection"`
}

type wireImage struct {
	URL       string    `json:"url"`
	Alignment Alignment `json:"alignment"`
}

type wireRuleGrid struct {
	SubType       GridStyle `json:"subType"`
	AmountOfLines int       `json:"amountOfLines"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	w := wireSnapshot{
		Time:    s.Time.UnixMilli(),
		Version: s.Version,
		Lines:   make([]wireLine, 0, len(s.Lines)),
	}
	for _, l := range s.Lines {
		data, err := encodePayload(l.Payload)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.ID, err)
		}
		w.Lines = append(w.Lines, wireLine{ID: l.ID, Type: l.Kind(), Data: data})
	}
	return json.Marshal(w)
}

func encodePayload(p Payload) ([]byte, error) {
	switch v := p.(type) {
	case nil:
		return json.Marshal(wireText{Subtype: Paragraph})
	case Text:
		w := wireText{Subtype: v.Subtype, HTML: v.Markup}
		if v.Selection != nil {
			w.Selection = []int{v.Selection.Anchor, v.Selection.Focus}
		}
		return json.Marshal(w)
	case Image:
		return json.Marshal(wireImage{URL: v.URL, Alignment: v.Alignment})
	case RuleGrid:
		return json.Marshal(wireRuleGrid{SubType: v.Style, AmountOfLines: v.Count})
	default:
		return nil, fmt.Errorf("unsupported payload %T", p)
	}
}

// UnmarshalJSON decodes and validates a snapshot. Unknown line types and
// out-of-range values are errors; missing optional values take defaults.
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var w wireSnapshot
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out := Snapshot{
		Time:    time.UnixMilli(w.Time),
		Version: w.Version,
		Lines:   make([]Line, 0, len(w.Lines)),
	}
	for i, wl := range w.Lines {
		p, err := decodePayload(wl.Type, wl.Data)
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		out.Lines = append(out.Lines, Line{ID: wl.ID, Payload: p})
	}
	*s = out
	return nil
}

func decodePayload(k Kind, data json.RawMessage) (Payload, error) {
	if len(data) == 0 || string(data) == "null" {
		data = json.RawMessage("{}")
	}
	switch k {
	case KindText:
		var w wireTextIn
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		t := Text{Subtype: w.Subtype, Markup: w.HTML}
		if t.Subtype == "" {
			t.Subtype = w.SubType
		}
		if t.Subtype == "" {
			t.Subtype = Paragraph
		}
		switch len(w.Selection) {
		case 0:
		case 2:
			t.Selection = &caret.Selection{Anchor: w.Selection[0], Focus: w.Selection[1]}
		default:
			return nil, fmt.Errorf("invalid selection %v", w.Selection)
		}
		return t, Validate(t)
	case KindImage:
		var w wireImage
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		if w.Alignment == "" {
			w.Alignment = AlignLeft
		}
		img := Image{URL: w.URL, Alignment: w.Alignment}
		return img, Validate(img)
	case KindRuleGrid:
		w := wireRuleGrid{AmountOfLines: DefaultRuleCount}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		if w.SubType == "" {
			w.SubType = GridLines
		}
		g := RuleGrid{Style: w.SubType, Count: w.AmountOfLines}
		return g, Validate(g)
	default:
		return nil, fmt.Errorf("unknown line type %q", k)
	}
}

// Encode writes s as indented JSON.
func Encode(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Decode reads one snapshot from r.
func Decode(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// ReadFile decodes the snapshot stored at path.
func ReadFile(path string) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(bytes.NewReader(b))
}

// WriteFile stores s at path, replacing the file atomically.
func WriteFile(path string, s Snapshot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
