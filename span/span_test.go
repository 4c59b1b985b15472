package span

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a $x^2$ b", []string{"a ", "x^2", " b"}},
		{"no spans", []string{"no spans"}},
		{"$a$$b$", []string{"", "a", "", "b", ""}},
		{"$$", []string{"", "", ""}},
		{"lone $ sign", []string{"lone $ sign"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, Split(DefaultDelimiter, tc.in)); diff != "" {
			t.Fatalf("Split(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestSplit_NoGroupKeepsWholeMatch(t *testing.T) {
	re := regexp.MustCompile(`\[\w+\]`)
	got := Split(re, "a [b] c")
	if diff := cmp.Diff([]string{"a ", "[b]", " c"}, got); diff != "" {
		t.Fatalf("Split mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_Success(t *testing.T) {
	tr := Transformer{Render: strings.ToUpper}
	got, err := tr.Transform("a $x^2$ b", "a $x^2$ b")
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got != "a X^2 b" {
		t.Fatalf("Transform=%q, want %q", got, "a X^2 b")
	}
}

func TestTransform_FormattedSpanAndEntities(t *testing.T) {
	tr := Transformer{Render: func(src string) string { return "[" + src + "]" }}

	got, err := tr.Transform("a $x$ b", "a $<b>x</b>$ b")
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got != "a [x] b" {
		t.Fatalf("Transform=%q", got)
	}

	got, err = tr.Transform("a $1<2$", "a&nbsp;$1&lt;2$")
	if err != nil {
		t.Fatalf("Transform with entities: %v", err)
	}
	if got != "a&nbsp;[1<2]" {
		t.Fatalf("Transform=%q", got)
	}
}

func TestTransform_DelimiterInAttribute(t *testing.T) {
	tr := Transformer{Render: strings.ToUpper}
	cases := []struct {
		name   string
		markup string
	}{
		{"same segment count", `<i title="$">a</i> $x^2$ b`},
		{"extra segments", `<i title="$$">a</i> $x^2$ b`},
	}
	for _, tc := range cases {
		_, err := tr.Transform("a $x^2$ b", tc.markup)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("%s: expected *ParseError, got %v", tc.name, err)
		}
		if perr.Markup != tc.markup || perr.Error() == "" {
			t.Fatalf("%s: unexpected error %#v", tc.name, perr)
		}
	}
}

func TestTransform_Defaults(t *testing.T) {
	got, err := Transformer{}.Transform("e = $mc^2$", "e = $mc^2$")
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if want := `e = <span class="math">mc²</span>`; got != want {
		t.Fatalf("Transform=%q, want %q", got, want)
	}
}

func TestTeXToUnicode(t *testing.T) {
	cases := map[string]string{
		`x^2`:            "x²",
		`a_{12}`:         "a₁₂",
		`\alpha + \beta`: "α + β",
		`\infty \in S`:   "∞ ∈ S",
		`x^a`:            "x^a",
		`x^`:             "x^",
		`e^{i\pi}`:       "e^{iπ}",
	}
	for in, want := range cases {
		if got := TeXToUnicode(in); got != want {
			t.Fatalf("TeXToUnicode(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestMath_EscapesOutput(t *testing.T) {
	if got, want := Math("a<b"), `<span class="math">a&lt;b</span>`; got != want {
		t.Fatalf("Math=%q, want %q", got, want)
	}
}
