package detect

// dataExfiltrationSpecs covers credential requests, API key and secret
// probing, and bulk data export attempts.
var dataExfiltrationSpecs = []patternSpec{
	{
		name:       "credential_request",
		expr:       `(?i)\b(tell|give|show|send|share|reveal|what\s*'?\s*s)\s+(me\s+)?(the\s+|your\s+|an?\s+)?(\w+\s+)?(password|passwords|passphrase|credentials?|login)\b`,
		confidence: 0.85,
		detail:     "credential disclosure request",
	},
	{
		name:       "api_key_probe",
		expr:       `(?i)\b(api[_\s-]?keys?|secret[_\s-]?keys?|access[_\s-]?tokens?|private[_\s-]?keys?|auth(entication)?\s+tokens?|bearer\s+tokens?)\b`,
		confidence: 0.8,
		detail:     "API key or token probe",
	},
	{
		name:       "bulk_export",
		expr:       `(?i)\b(export|dump|extract|download|list)\s+(all\s+|every\s+|the\s+entire\s+)?(users?|customers?|clients?|accounts?|database|records?|emails?)\b`,
		confidence: 0.75,
		detail:     "bulk data export request",
	},
	{
		name:       "pii_harvest",
		expr:       `(?i)\b(social\s+security|credit\s+card|card\s+numbers?|ssn|date\s+of\s+birth|home\s+address(es)?)\b.{0,40}\b(numbers?|details?|info(rmation)?|list)\b|\ball\s+(the\s+)?(personal|customer)\s+(data|info(rmation)?|details)\b`,
		confidence: 0.8,
		detail:     "personal data harvest",
	},
	{
		name:       "config_secrets",
		expr:       `(?i)\b(environment\s+variables?|env\s+vars?|\.env\b|config(uration)?\s+(file|secrets?)|connection\s+strings?|database\s+(password|credentials))\b`,
		confidence: 0.7,
		detail:     "configuration secret probe",
	},
	{
		name:       "internal_docs",
		expr:       `(?i)\b(internal|confidential|proprietary)\s+(documents?|docs|data|files?|information)\b`,
		confidence: 0.6,
		detail:     "internal document request",
	},
}

// DataExfiltrationDetector matches attempts to pull credentials, secrets, or
// bulk records out of the agent.
type DataExfiltrationDetector struct {
	table []*CompiledPattern
}

func NewDataExfiltrationDetector() *DataExfiltrationDetector {
	return &DataExfiltrationDetector{table: compilePatterns(TypeDataExfiltration, dataExfiltrationSpecs)}
}

func (d *DataExfiltrationDetector) Name() string { return TypeDataExfiltration }

func (d *DataExfiltrationDetector) Detect(in Input) (*Finding, error) {
	return scanTable(TypeDataExfiltration, d.table, in.Text), nil
}
