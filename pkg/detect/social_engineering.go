package detect

// socialEngineeringSpecs covers authority claims, urgency and pressure
// framing, emotional leverage, and trust-building overtures.
var socialEngineeringSpecs = []patternSpec{
	{
		name:       "authority_claim",
		expr:       `(?i)\b(i\s*'?\s*a?m|this\s+is)\s+(your|the)\s+(boss|manager|ceo|cto|admin(istrator)?|developer|creator|owner|supervisor|security\s+team)\b`,
		confidence: 0.8,
		detail:     "claimed position of authority",
	},
	{
		name:       "urgency",
		expr:       `(?i)\b(urgent(ly)?|immediately|right\s+now|asap|emergency|time[- ]sensitive|before\s+it'?s\s+too\s+late)\b`,
		confidence: 0.5,
		detail:     "urgency pressure",
	},
	{
		name:       "pressure",
		expr:       `(?i)\b(you\s+(must|have\s+to)\s+(do|comply|answer|respond)|or\s+else\b|last\s+chance|final\s+warning|you'?ll\s+regret)\b`,
		confidence: 0.55,
		detail:     "coercive pressure",
	},
	{
		name:       "emotional_leverage",
		expr:       `(?i)\b(i'?m\s+(desperate|begging\s+you)|my\s+(job|life|family)\s+depends\s+on|please\s+please\s+please)\b`,
		confidence: 0.6,
		detail:     "emotional manipulation",
	},
	{
		name:       "trust_building",
		expr:       `(?i)\b(just\s+between\s+us|you\s+can\s+trust\s+me|i\s+won'?t\s+tell\s+anyone|our\s+(little\s+)?secret|off\s+the\s+record)\b`,
		confidence: 0.65,
		detail:     "confidentiality grooming",
	},
	{
		name:       "verification_dodge",
		expr:       `(?i)\b(no\s+need\s+to\s+(verify|check|confirm)|skip\s+the\s+verification|don'?t\s+ask\s+(for\s+)?(id|verification|confirmation))\b`,
		confidence: 0.7,
		detail:     "attempt to bypass verification",
	},
}

// SocialEngineeringDetector matches manipulation framing rather than
// technical payloads.
type SocialEngineeringDetector struct {
	table []*CompiledPattern
}

func NewSocialEngineeringDetector() *SocialEngineeringDetector {
	return &SocialEngineeringDetector{table: compilePatterns(TypeSocialEngineering, socialEngineeringSpecs)}
}

func (d *SocialEngineeringDetector) Name() string { return TypeSocialEngineering }

func (d *SocialEngineeringDetector) Detect(in Input) (*Finding, error) {
	return scanTable(TypeSocialEngineering, d.table, in.Text), nil
}
