package detect

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	zeroWidthRunes = []string{
		"​", "‌", "‍", "‎", "‏",
		"⁠", "\uFEFF", "­",
	}
	encodedBlob = regexp.MustCompile(`\b[A-Za-z0-9+/]{40,}={0,2}\b`)
)

// EvasionDetector flags obfuscation artifacts in the raw turn directly:
// zero-width characters, mixed-script tokens, fullwidth forms, dot-separated
// words, and long encoded blobs. Obfuscation that only shows once the
// normalizer has undone it is co-tagged by the pipeline instead.
type EvasionDetector struct{}

func NewEvasionDetector() *EvasionDetector { return &EvasionDetector{} }

func (d *EvasionDetector) Name() string { return TypeEvasion }

func (d *EvasionDetector) Detect(in Input) (*Finding, error) {
	var (
		patterns []string
		best     float64
		detail   string
	)
	hit := func(name string, confidence float64, reason string) {
		patterns = append(patterns, name)
		if confidence > best {
			best = confidence
			detail = reason
		}
	}

	if containsAnyOf(in.Text, zeroWidthRunes) {
		hit("zero_width", 0.7, "zero-width characters embedded in text")
	}
	if hasMixedScriptToken(in.Text) {
		hit("homoglyph", 0.75, "mixed Latin and Cyrillic/Greek script in one word")
	}
	if hasFullwidth(in.Text) {
		hit("fullwidth", 0.6, "fullwidth character forms")
	}
	if dotSeparated.MatchString(in.Text) {
		hit("dot_separation", 0.6, "dot-separated word")
	}
	if encodedBlob.MatchString(in.Text) {
		hit("encoded_payload", 0.5, "long encoded blob")
	}

	if len(patterns) == 0 {
		return nil, nil
	}
	return &Finding{
		Type:       TypeEvasion,
		Confidence: best,
		Patterns:   patterns,
		Details: map[string]any{
			"matched": len(patterns),
			"reason":  detail,
		},
	}, nil
}

func containsAnyOf(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasFullwidth(s string) bool {
	for _, r := range s {
		if (r >= 0xFF01 && r <= 0xFF5E) || r == 0x3000 {
			return true
		}
	}
	return false
}

// hasMixedScriptToken reports whether any word mixes Latin letters with
// Cyrillic or Greek ones, the signature of a homoglyph substitution.
func hasMixedScriptToken(s string) bool {
	var latin, confusable bool
	for _, r := range s {
		if !unicode.IsLetter(r) {
			if latin && confusable {
				return true
			}
			latin, confusable = false, false
			continue
		}
		switch {
		case unicode.Is(unicode.Latin, r):
			latin = true
		case unicode.Is(unicode.Cyrillic, r) || unicode.Is(unicode.Greek, r):
			confusable = true
		}
	}
	return latin && confusable
}
