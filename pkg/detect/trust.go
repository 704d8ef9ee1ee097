package detect

// trustSpecs covers structural authority spoofing: fake system tags, role
// assignment strings, and system-override phrasing. The phrase list is
// deliberately disjoint from the prompt_injection table so a single
// injection turn is not double-counted across both detectors.
var trustSpecs = []patternSpec{
	{
		name:       "fake_system_tag",
		expr:       `(?i)\[\s*(system|admin|root|moderator|developer)\s*(message|note|notice|override)?\s*\]`,
		confidence: 0.8,
		detail:     "bracketed authority tag",
	},
	{
		name:       "role_assignment",
		expr:       `(?i)\brole\s*[:=]\s*["']?\s*(system|admin|root|assistant)\b`,
		confidence: 0.8,
		detail:     "role assignment string",
	},
	{
		name:       "system_override",
		expr:       `(?i)\b(system\s+override|admin\s+override|override\s+code|maintenance\s+mode\s+engaged)\b`,
		confidence: 0.7,
		detail:     "system override phrase",
	},
	{
		name:       "new_system_prompt",
		expr:       `(?i)\bnew\s+system\s+(prompt|message|instructions?)\b`,
		confidence: 0.75,
		detail:     "replacement system prompt claim",
	},
	{
		name:       "official_claim",
		expr:       `(?i)\bthis\s+is\s+an?\s+(official|system|verified)\s+(request|message|notice)\b`,
		confidence: 0.5,
		detail:     "claimed official channel",
	},
}

// TrustDetector matches structural signals that spoof system or operator
// authority; hits also erode the per-user trust standing via the scorer.
type TrustDetector struct {
	table []*CompiledPattern
}

func NewTrustDetector() *TrustDetector {
	return &TrustDetector{table: compilePatterns(TypeTrust, trustSpecs)}
}

func (d *TrustDetector) Name() string { return TypeTrust }

func (d *TrustDetector) Detect(in Input) (*Finding, error) {
	return scanTable(TypeTrust, d.table, in.Text), nil
}
