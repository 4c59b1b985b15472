// Package keyword detects line-start trigger keywords such as "# " that
// change a line's subtype or kind.
package keyword

import (
	"strings"

	"github.com/iw2rmb/folio/internal/grapheme"
)

// Scope tells whether a keyword changes the line in place or replaces it.
type Scope uint8

const (
	// Inner keywords change the subtype of a text line (headings).
	Inner Scope = iota
	// Outer keywords switch the whole line to another kind.
	Outer
)

// Entry maps a keyword to its target value: a text subtype for inner
// keywords, a line kind tag for outer ones.
type Entry struct {
	Keyword string
	Value   string
}

// Headings are the inner keywords of text lines.
var Headings = []Entry{
	{Keyword: "#", Value: "h1"},
	{Keyword: "##", Value: "h2"},
	{Keyword: "###", Value: "h3"},
}

// Match is a fired keyword.
type Match struct {
	Entry
	Scope Scope
}

// Registry holds the ordered keyword entries. Inner entries are checked
// before outer ones.
type Registry struct {
	inner []Entry
	outer []Entry
}

// New returns a registry with the given inner entries and one outer entry per
// kind tag; an outer keyword is the tag itself.
func New(inner []Entry, kinds ...string) *Registry {
	r := &Registry{inner: append([]Entry(nil), inner...)}
	for _, k := range kinds {
		r.outer = append(r.outer, Entry{Keyword: k, Value: k})
	}
	return r
}

// Detect compares the previous and current plain text of a line after an
// edit and reports the keyword the user just completed with a separator.
func (r *Registry) Detect(prev, cur string) (Match, bool) {
	if r == nil || prev == cur {
		return Match{}, false
	}
	for _, e := range r.inner {
		if Fired(e.Keyword, prev, cur) {
			return Match{Entry: e, Scope: Inner}, true
		}
	}
	for _, e := range r.outer {
		if Fired(e.Keyword, prev, cur) {
			return Match{Entry: e, Scope: Outer}, true
		}
	}
	return Match{}, false
}

// Fired reports whether inserting one space into prev right after the
// keyword's position reproduces cur (both trimmed) and cur starts with the
// keyword as its first space-delimited token. Only U+0020 delimits tokens.
func Fired(keyword, prev, cur string) bool {
	if keyword == "" {
		return false
	}
	if firstToken(cur) != keyword {
		return false
	}
	withSep := grapheme.Insert(prev, grapheme.Count(keyword), " ")
	return strings.TrimSpace(withSep) == strings.TrimSpace(cur)
}

func firstToken(s string) string {
	return strings.SplitN(strings.TrimLeft(s, " "), " ", 2)[0]
}

// Lead returns the number of leading graphemes of text taken by keyword,
// counting the spaces around it. It returns 0 when text does not start with
// keyword.
func Lead(text, keyword string) int {
	if keyword == "" || firstToken(text) != keyword {
		return 0
	}
	rest := strings.TrimLeft(text, " ")
	n := grapheme.Count(text) - grapheme.Count(rest) + grapheme.Count(keyword)
	if strings.HasPrefix(rest[len(keyword):], " ") {
		n++
	}
	return n
}

var separators = []string{" ", "&nbsp;", "\u00a0"}

// StripMarkup removes a leading keyword and the single separator after it
// from raw markup. It reports false when markup does not start with keyword.
func StripMarkup(markup, keyword string) (string, bool) {
	if keyword == "" || !strings.HasPrefix(markup, keyword) {
		return markup, false
	}
	rest := markup[len(keyword):]
	for _, sep := range separators {
		if strings.HasPrefix(rest, sep) {
			return rest[len(sep):], true
		}
	}
	return rest, true
}
