package detect

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// errorLogInterval throttles per-detector failure logging.
const errorLogInterval = time.Minute

// coTagConfidence is the floor confidence for an evasion finding created
// because a detection only surfaced on the normalized text.
const coTagConfidence = 0.7

// Pipeline runs the ordered detector set over a turn. Safe for concurrent
// use across users; it holds no per-conversation state.
type Pipeline struct {
	detectors []Detector

	mu        sync.Mutex
	lastError map[string]time.Time

	logger *slog.Logger
	now    func() time.Time
}

// NewPipeline assembles the default detector order.
func NewPipeline() *Pipeline {
	return NewPipelineWith(
		NewPromptInjectionDetector(),
		NewSocialEngineeringDetector(),
		NewPrivilegeEscalationDetector(),
		NewDataExfiltrationDetector(),
		NewEvasionDetector(),
		NewTrustDetector(),
	)
}

// NewPipelineWith assembles a pipeline over an explicit detector list,
// mainly for tests.
func NewPipelineWith(detectors ...Detector) *Pipeline {
	return &Pipeline{
		detectors: detectors,
		lastError: make(map[string]time.Time),
		logger:    slog.With("component", "detect"),
		now:       time.Now,
	}
}

// Run scans the turn with every detector, first raw and, when normalization
// changed the text, again on the normalized form. A finding that only
// surfaces after normalization is kept and co-tagged with an evasion
// finding. A failing detector is skipped; the pipeline never fails as a
// whole.
func (p *Pipeline) Run(text string, priorTypes []string) []Finding {
	norm := Normalize(text)
	found := p.scan(Input{Text: text, PriorTypes: priorTypes})

	if norm.Changed() {
		renorm := p.scan(Input{Text: norm.Text, PriorTypes: priorTypes})
		var revealed []string
		for _, d := range p.detectors {
			typ := d.Name()
			if typ == TypeEvasion {
				// Artifact checks already ran on the raw form.
				continue
			}
			f, ok := renorm[typ]
			if !ok {
				continue
			}
			if _, dup := found[typ]; dup {
				continue
			}
			found[typ] = f
			revealed = append(revealed, typ)
		}
		if len(revealed) > 0 {
			coTagEvasion(found, norm, revealed)
		}
	}

	out := make([]Finding, 0, len(found))
	for _, d := range p.detectors {
		if f, ok := found[d.Name()]; ok {
			out = append(out, *f)
		}
	}
	return out
}

func (p *Pipeline) scan(in Input) map[string]*Finding {
	found := make(map[string]*Finding, len(p.detectors))
	for _, d := range p.detectors {
		f, err := p.runDetector(d, in)
		if err != nil {
			p.noteFailure(d.Name(), err)
			continue
		}
		if f != nil {
			found[f.Type] = f
		}
	}
	return found
}

// runDetector isolates a single detector call; a panic inside a detector is
// converted to an error so one broken pattern set cannot take down the turn.
func (p *Pipeline) runDetector(d Detector, in Input) (f *Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = fmt.Errorf("detector panicked: %v", r)
		}
	}()
	return d.Detect(in)
}

// noteFailure logs a detector failure at most once per detector per minute.
func (p *Pipeline) noteFailure(name string, err error) {
	now := p.now()
	p.mu.Lock()
	last, seen := p.lastError[name]
	if seen && now.Sub(last) < errorLogInterval {
		p.mu.Unlock()
		return
	}
	p.lastError[name] = now
	p.mu.Unlock()
	p.logger.Error("Detector failed, findings dropped", "detector", name, "error", err)
}

// coTagEvasion attaches or upgrades an evasion finding when detections only
// surfaced after normalization undid an obfuscation.
func coTagEvasion(found map[string]*Finding, norm Normalized, revealed []string) {
	ev, ok := found[TypeEvasion]
	if !ok {
		ev = &Finding{Type: TypeEvasion, Confidence: coTagConfidence}
		found[TypeEvasion] = ev
	}
	if ev.Confidence < coTagConfidence {
		ev.Confidence = coTagConfidence
	}
	ev.Patterns = append(ev.Patterns, "normalization_reveal")
	if ev.Details == nil {
		ev.Details = map[string]any{}
	}
	ev.Details["transforms"] = norm.Applied
	ev.Details["revealed"] = revealed
}
