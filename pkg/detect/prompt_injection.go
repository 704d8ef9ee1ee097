package detect

// promptInjectionSpecs covers instruction override, role/system tag
// injection, delimiter tricks, and jailbreak persona templates.
var promptInjectionSpecs = []patternSpec{
	{
		name:       "instruction_override",
		expr:       `(?i)\b(ignore|disregard|forget|skip|override)\s+(all\s+|any\s+|your\s+|the\s+)?(previous|prior|above|earlier|initial|original|system)\s+(instructions?|prompts?|rules?|directives?|guidelines?|context)`,
		confidence: 0.9,
		detail:     "explicit instruction override request",
	},
	{
		name:       "new_instructions",
		expr:       `(?i)\b(new|updated|revised|real)\s+(instructions?|rules?|directives?)\s*:`,
		confidence: 0.75,
		detail:     "attempt to supply replacement instructions",
	},
	{
		name:       "role_injection",
		expr:       `(?i)(\[/?(system|assistant|inst)\]|<\|?(system|im_start|im_end)\|?>|^\s*(system|assistant)\s*:)`,
		confidence: 0.85,
		detail:     "injected role or chat-template markup",
	},
	{
		name:       "jailbreak_persona",
		expr:       `(?i)\b(you\s+are\s+now|act\s+as|pretend\s+(to\s+be|you\s+are)|roleplay\s+as)\s+(dan\b|an?\s+(unrestricted|unfiltered|uncensored|evil)\b)`,
		confidence: 0.85,
		detail:     "unrestricted persona assignment",
	},
	{
		name:       "jailbreak_mode",
		expr:       `(?i)\b(dan\s+mode|do\s+anything\s+now|developer\s+mode|jailbreak(ed|ing)?)\b`,
		confidence: 0.9,
		detail:     "known jailbreak trigger phrase",
	},
	{
		name:       "no_restrictions",
		expr:       `(?i)\b(you\s+have|with|without\s+any)\s+no\s+(rules|restrictions|limits|filters)\b|\bwithout\s+(any\s+)?(rules|restrictions|limits|filters)\b`,
		confidence: 0.7,
		detail:     "request to operate without restrictions",
	},
	{
		name:       "delimiter_trick",
		expr:       "(?i)(```+|---+|###+)\\s*(system|instructions?|admin)\\b",
		confidence: 0.7,
		detail:     "delimiter-fenced system block",
	},
	{
		name:       "prompt_leak",
		expr:       `(?i)\b(show|reveal|print|repeat|output|display)\s+(me\s+)?(your|the)\s+(system\s+|initial\s+|original\s+)?(prompt|instructions)\b`,
		confidence: 0.8,
		detail:     "system prompt disclosure request",
	},
}

// PromptInjectionDetector matches direct attempts to replace or leak the
// agent's instructions.
type PromptInjectionDetector struct {
	table []*CompiledPattern
}

func NewPromptInjectionDetector() *PromptInjectionDetector {
	return &PromptInjectionDetector{table: compilePatterns(TypePromptInjection, promptInjectionSpecs)}
}

func (d *PromptInjectionDetector) Name() string { return TypePromptInjection }

func (d *PromptInjectionDetector) Detect(in Input) (*Finding, error) {
	return scanTable(TypePromptInjection, d.table, in.Text), nil
}
