package span

import (
	"html"
	"sort"
	"strings"
)

var texSymbols = map[string]string{
	`\alpha`: "α", `\beta`: "β", `\gamma`: "γ", `\delta`: "δ", `\epsilon`: "ε",
	`\zeta`: "ζ", `\eta`: "η", `\theta`: "θ", `\iota`: "ι", `\kappa`: "κ",
	`\lambda`: "λ", `\mu`: "μ", `\nu`: "ν", `\xi`: "ξ", `\pi`: "π",
	`\rho`: "ρ", `\sigma`: "σ", `\tau`: "τ", `\phi`: "φ", `\chi`: "χ",
	`\psi`: "ψ", `\omega`: "ω",
	`\Gamma`: "Γ", `\Delta`: "Δ", `\Theta`: "Θ", `\Lambda`: "Λ", `\Pi`: "Π",
	`\Sigma`: "Σ", `\Phi`: "Φ", `\Psi`: "Ψ", `\Omega`: "Ω",

	`\times`: "×", `\cdot`: "·", `\div`: "÷", `\pm`: "±", `\mp`: "∓",
	`\leq`: "≤", `\geq`: "≥", `\neq`: "≠", `\approx`: "≈", `\equiv`: "≡",
	`\infty`: "∞", `\sum`: "∑", `\prod`: "∏", `\int`: "∫", `\partial`: "∂",
	`\nabla`: "∇", `\sqrt`: "√", `\in`: "∈", `\notin`: "∉", `\subset`: "⊂",
	`\cup`: "∪", `\cap`: "∩", `\forall`: "∀", `\exists`: "∃", `\to`: "→",
	`\rightarrow`: "→", `\leftarrow`: "←", `\Rightarrow`: "⇒", `\iff`: "⇔",
	`\ldots`: "…", `\cdots`: "⋯",
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾', 'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
}

// texReplacer replaces longer commands first so \in does not eat \infty.
var texReplacer = func() *strings.Replacer {
	keys := make([]string, 0, len(texSymbols))
	for k := range texSymbols {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, texSymbols[k])
	}
	return strings.NewReplacer(pairs...)
}()

// Math renders a TeX source as an inline math span. Known commands become
// Unicode symbols and ^/_ scripts of digits become super/subscripts; anything
// else is kept as written.
func Math(src string) string {
	return `<span class="math">` + html.EscapeString(TeXToUnicode(src)) + `</span>`
}

// TeXToUnicode approximates a TeX formula with Unicode text.
func TeXToUnicode(src string) string {
	s := texReplacer.Replace(src)

	var sb strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if (r != '^' && r != '_') || i+1 >= len(rs) {
			sb.WriteRune(r)
			continue
		}
		table := superscripts
		if r == '_' {
			table = subscripts
		}
		arg, next := scriptArg(rs, i+1)
		converted, ok := convertScript(arg, table)
		if !ok {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(converted)
		i = next - 1
	}
	return sb.String()
}

// scriptArg returns the script argument starting at rs[i], either a braced
// group or a single rune, and the index after it.
func scriptArg(rs []rune, i int) ([]rune, int) {
	if rs[i] != '{' {
		return rs[i : i+1], i + 1
	}
	for j := i + 1; j < len(rs); j++ {
		if rs[j] == '}' {
			return rs[i+1 : j], j + 1
		}
	}
	return rs[i : i+1], i + 1
}

func convertScript(arg []rune, table map[rune]rune) (string, bool) {
	if len(arg) == 0 {
		return "", false
	}
	out := make([]rune, len(arg))
	for k, r := range arg {
		m, ok := table[r]
		if !ok {
			return "", false
		}
		out[k] = m
	}
	return string(out), true
}
