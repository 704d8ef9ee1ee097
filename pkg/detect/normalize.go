package detect

import (
	"regexp"
	"strings"
	"unicode"
)

// Transform names reported in Normalized.Applied and evasion co-tags.
const (
	transformZeroWidth     = "zero_width"
	transformFullwidth     = "fullwidth"
	transformHomoglyph     = "homoglyph"
	transformLeetspeak     = "leetspeak"
	transformDotSeparation = "dot_separation"
)

// Normalized is the result of normalizing a turn. Applied lists the
// transforms that changed the text, in application order. An empty Applied
// means the text was already canonical and callers skip the second scan.
type Normalized struct {
	Text    string
	Applied []string
}

// Changed reports whether normalization altered the text.
func (n Normalized) Changed() bool { return len(n.Applied) > 0 }

var zeroWidthReplacer = strings.NewReplacer(
	"​", "", // zero width space
	"‌", "", // zero width non-joiner
	"‍", "", // zero width joiner
	"‎", "", // left-to-right mark
	"‏", "", // right-to-left mark
	"⁠", "", // word joiner
	"\uFEFF", "", // zero width no-break space
	"­", "", // soft hyphen
)

// homoglyphs maps Cyrillic and Greek confusables to their Latin look-alikes.
// Only visually near-identical pairs are folded.
var homoglyphs = map[rune]rune{
	// Cyrillic lowercase
	'а': 'a', 'е': 'e', 'о': 'o', 'р': 'p', 'с': 'c', 'у': 'y', 'х': 'x',
	'і': 'i', 'ѕ': 's', 'ј': 'j', 'ԁ': 'd', 'ԛ': 'q', 'ԝ': 'w',
	// Cyrillic uppercase
	'А': 'A', 'В': 'B', 'Е': 'E', 'К': 'K', 'М': 'M', 'Н': 'H', 'О': 'O',
	'Р': 'P', 'С': 'C', 'Т': 'T', 'У': 'Y', 'Х': 'X', 'І': 'I', 'Ѕ': 'S', 'Ј': 'J',
	// Greek
	'α': 'a', 'ο': 'o', 'ν': 'v', 'ι': 'i', 'ρ': 'p', 'υ': 'u', 'κ': 'k', 'τ': 't',
	'Α': 'A', 'Β': 'B', 'Ε': 'E', 'Ζ': 'Z', 'Η': 'H', 'Ι': 'I', 'Κ': 'K',
	'Μ': 'M', 'Ν': 'N', 'Ο': 'O', 'Ρ': 'P', 'Τ': 'T', 'Υ': 'Y', 'Χ': 'X',
}

// leet maps leetspeak substitutions back to letters. Substitution happens
// only inside word tokens that contain at least one real letter, so
// free-standing numbers survive untouched.
var leet = map[rune]rune{
	'0': 'o', '1': 'i', '3': 'e', '4': 'a', '5': 's', '7': 't',
	'@': 'a', '$': 's',
}

// dotSeparated matches single letters chained with dots ("p.a.s.s.w.o.r.d").
var dotSeparated = regexp.MustCompile(`(?:[A-Za-z]\.){2,}[A-Za-z]`)

// Normalize produces the canonical form of a turn for evasion-resistant
// scanning. It is a pure function of its input.
func Normalize(text string) Normalized {
	n := Normalized{Text: text}
	apply := func(name string, f func(string) string) {
		if out := f(n.Text); out != n.Text {
			n.Text = out
			n.Applied = append(n.Applied, name)
		}
	}
	apply(transformZeroWidth, zeroWidthReplacer.Replace)
	apply(transformFullwidth, foldFullwidth)
	apply(transformHomoglyph, foldHomoglyphs)
	apply(transformLeetspeak, decodeLeet)
	apply(transformDotSeparation, stripDotSeparation)
	return n
}

// foldFullwidth collapses fullwidth ASCII variants (U+FF01..U+FF5E) and the
// ideographic space to their ASCII counterparts.
func foldFullwidth(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0xFF01 && r <= 0xFF5E:
			return r - 0xFEE0
		case r == 0x3000:
			return ' '
		}
		return r
	}, s)
}

func foldHomoglyphs(s string) string {
	return strings.Map(func(r rune) rune {
		if latin, ok := homoglyphs[r]; ok {
			return latin
		}
		return r
	}, s)
}

// decodeLeet rewrites leetspeak substitutions inside word tokens. A token is
// a maximal run of letters and leet characters; tokens with no letters at all
// (plain numbers, prices) are left untouched.
func decodeLeet(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		r := runes[i]
		if !unicode.IsLetter(r) && leet[r] == 0 {
			b.WriteRune(r)
			i++
			continue
		}
		j := i
		hasLetter := false
		for j < len(runes) && (unicode.IsLetter(runes[j]) || leet[runes[j]] != 0) {
			if unicode.IsLetter(runes[j]) {
				hasLetter = true
			}
			j++
		}
		for k := i; k < j; k++ {
			if sub := leet[runes[k]]; sub != 0 && hasLetter {
				b.WriteRune(sub)
			} else {
				b.WriteRune(runes[k])
			}
		}
		i = j
	}
	return b.String()
}

func stripDotSeparation(s string) string {
	return dotSeparated.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, ".", "")
	})
}
