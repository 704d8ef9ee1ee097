// Package detect implements the per-turn threat detection pipeline.
//
// A fixed ordered set of detectors runs over each incoming user turn and
// returns typed findings with confidence. Detectors are pure: they never
// mutate state and are safe to run concurrently across users. The pipeline
// scans both the raw turn and its normalized form; findings that surface only
// after normalization receive an evasion co-tag.
package detect

// Detection types produced by the built-in detectors.
const (
	TypePromptInjection     = "prompt_injection"
	TypeSocialEngineering   = "social_engineering"
	TypePrivilegeEscalation = "privilege_escalation"
	TypeDataExfiltration    = "data_exfiltration"
	TypeEvasion             = "evasion"
	TypeTrust               = "trust"
)

// Finding is a detector's output record about one turn.
type Finding struct {
	Type       string         `json:"type"`
	Confidence float64        `json:"confidence"`
	Patterns   []string       `json:"patterns,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// Input carries one text form of a turn plus the read-only session context
// detectors may consult.
type Input struct {
	Text string
	// PriorTypes lists the distinct detection types recorded earlier in the
	// session, oldest first.
	PriorTypes []string
}

// Detector classifies a single aspect of a turn. Implementations must be
// stateless; Detect returns nil when nothing matched.
type Detector interface {
	Name() string
	Detect(in Input) (*Finding, error)
}
