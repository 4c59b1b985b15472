// Package grapheme counts and slices text in user-perceived characters.
//
// Every "character length" in folio (text node weights, caret offsets,
// keyword positions) is measured in grapheme clusters.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}

// Insert returns text with s inserted before grapheme index at.
// at is clamped into [0, Count(text)].
func Insert(text string, at int, s string) string {
	n := Count(text)
	if at < 0 {
		at = 0
	}
	if at > n {
		at = n
	}
	return Slice(text, 0, at) + s + Slice(text, at, n)
}

// Remove returns text without the clusters in [start, end).
func Remove(text string, start, end int) string {
	n := Count(text)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return text
	}
	return Slice(text, 0, start) + Slice(text, end, n)
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w == 0 && text != "" {
		w = uniseg.StringWidth(text)
	}
	return w
}

// Truncate shortens text to at most width cells, ending in tail when cut.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, tail)
}
