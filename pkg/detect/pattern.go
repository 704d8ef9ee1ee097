package detect

import (
	"log/slog"
	"regexp"
)

// patternSpec is the literal form a detector declares its patterns in.
type patternSpec struct {
	name       string
	expr       string
	confidence float64
	detail     string
}

// CompiledPattern holds a pre-compiled regex with its confidence and detail.
type CompiledPattern struct {
	Name       string
	Regex      *regexp.Regexp
	Confidence float64
	Detail     string
}

// compilePatterns compiles a spec table eagerly. Invalid expressions are
// logged and skipped so one bad pattern never disables a detector.
func compilePatterns(detector string, specs []patternSpec) []*CompiledPattern {
	out := make([]*CompiledPattern, 0, len(specs))
	for _, s := range specs {
		re, err := regexp.Compile(s.expr)
		if err != nil {
			slog.Error("Failed to compile detection pattern, skipping",
				"detector", detector, "pattern", s.name, "error", err)
			continue
		}
		out = append(out, &CompiledPattern{
			Name:       s.name,
			Regex:      re,
			Confidence: s.confidence,
			Detail:     s.detail,
		})
	}
	return out
}

// scanTable runs a compiled table over the input text and folds all matches
// into a single finding: the highest pattern confidence wins, all matched
// pattern names are accumulated. Returns nil when nothing matched.
func scanTable(typ string, table []*CompiledPattern, text string) *Finding {
	var (
		matched []string
		best    float64
		detail  string
	)
	for _, p := range table {
		if !p.Regex.MatchString(text) {
			continue
		}
		matched = append(matched, p.Name)
		if p.Confidence > best {
			best = p.Confidence
			detail = p.Detail
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return &Finding{
		Type:       typ,
		Confidence: best,
		Patterns:   matched,
		Details: map[string]any{
			"matched": len(matched),
			"reason":  detail,
		},
	}
}
