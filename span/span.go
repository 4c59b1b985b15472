// Package span renders delimited spans (such as $x^2$) inside a line's raw
// markup for display.
//
// Rendering is one-way. The raw markup stays the editable source of truth and
// is restored verbatim when a line is edited again.
package span

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// DefaultDelimiter matches a dollar-bounded span without nested dollars.
// Submatch 1 is the span source without delimiters.
var DefaultDelimiter = regexp.MustCompile(`\$([^$]*)\$`)

// RenderFunc turns the plain source of one span into display markup.
type RenderFunc func(src string) string

// ParseError reports that a line's markup cannot be split in step with its
// plain text, typically because the delimiter appears inside a tag.
type ParseError struct {
	Text   string
	Markup string

	TextSegments   int
	MarkupSegments int
	// Segment is the first mismatching span index when the counts agree.
	Segment int
}

func (e *ParseError) Error() string {
	if e.TextSegments != e.MarkupSegments {
		return fmt.Sprintf("span: markup uses the delimiter outside text (%d text segments, %d markup segments)",
			e.TextSegments, e.MarkupSegments)
	}
	return fmt.Sprintf("span: markup segment %d does not match its text", e.Segment)
}

// Split splits s around matches of re with capturing-split semantics: even
// indices hold the text between matches and odd indices hold each match's
// first submatch, or the whole match when re has no groups.
func Split(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	out := make([]string, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		out = append(out, s[prev:m[0]])
		if len(m) >= 4 && m[2] >= 0 {
			out = append(out, s[m[2]:m[3]])
		} else {
			out = append(out, s[m[0]:m[1]])
		}
		prev = m[1]
	}
	return append(out, s[prev:])
}

// Transformer substitutes delimited spans in markup with rendered output.
type Transformer struct {
	// Delimiter defaults to DefaultDelimiter.
	Delimiter *regexp.Regexp
	// Render defaults to Math.
	Render RenderFunc
}

// Default is the transformer used by text lines.
var Default = Transformer{Delimiter: DefaultDelimiter, Render: Math}

// Transform splits text and markup on the delimiter and replaces every span
// segment of markup with the rendered plain-text span. Segments outside spans
// are kept byte for byte.
//
// It returns a *ParseError when the two splits do not line up; callers then
// display the raw markup.
func (t Transformer) Transform(text, markup string) (string, error) {
	re := t.Delimiter
	if re == nil {
		re = DefaultDelimiter
	}
	render := t.Render
	if render == nil {
		render = Math
	}

	textParts := Split(re, text)
	markupParts := Split(re, markup)
	if len(textParts) != len(markupParts) {
		return "", &ParseError{
			Text:           text,
			Markup:         markup,
			TextSegments:   len(textParts),
			MarkupSegments: len(markupParts),
		}
	}

	var sb strings.Builder
	for i, part := range markupParts {
		if i%2 == 0 {
			sb.WriteString(part)
			continue
		}
		if segmentText(part) != textParts[i] {
			return "", &ParseError{
				Text:           text,
				Markup:         markup,
				TextSegments:   len(textParts),
				MarkupSegments: len(markupParts),
				Segment:        i,
			}
		}
		sb.WriteString(render(textParts[i]))
	}
	return sb.String(), nil
}

// segmentText returns the text a markup fragment would display: tags are
// dropped and entities decoded.
func segmentText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				sb.WriteByte('\n')
			}
		}
	}
}
