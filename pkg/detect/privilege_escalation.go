package detect

// privilegeEscalationSpecs covers admin/root requests, permission grants,
// safety bypass, and command execution.
var privilegeEscalationSpecs = []patternSpec{
	{
		name:       "admin_access",
		expr:       `(?i)\b(give|grant|provide|enable|get)\s+(me\s+)?(admin|root|sudo|superuser|elevated)\s*(access|privileges?|rights?|permissions?|mode)?\b`,
		confidence: 0.85,
		detail:     "elevated access request",
	},
	{
		name:       "privileged_mode",
		expr:       `(?i)\b(sudo\s+mode|admin\s+mode|god\s+mode|root\s+access|privileged\s+mode|super\s*user)\b`,
		confidence: 0.8,
		detail:     "privileged mode invocation",
	},
	{
		name:       "permission_change",
		expr:       `(?i)\b(change|modify|update|escalate|elevate)\s+(my\s+)?(permissions?|privileges?|access\s+level|role)\b`,
		confidence: 0.7,
		detail:     "permission modification request",
	},
	{
		name:       "command_execution",
		expr:       `(?i)\b(execute|run)\s+(this\s+|the\s+|a\s+)?(command|script|shell|query|code)\b`,
		confidence: 0.65,
		detail:     "command execution request",
	},
	{
		name:       "dangerous_command",
		expr:       `(?i)(rm\s+-rf\s+|chmod\s+777|mkfs\.|:\(\)\s*\{\s*:\|:&\s*\};|curl\s+[^\s]+\s*\|\s*(ba)?sh)`,
		confidence: 0.9,
		detail:     "destructive shell payload",
	},
	{
		name:       "disable_safety",
		expr:       `(?i)\b(disable|turn\s+off|bypass|remove|deactivate)\s+(the\s+|your\s+|all\s+)?(safety|security|filter(s|ing)?|restrictions?|guardrails?|protections?)\b`,
		confidence: 0.85,
		detail:     "safety control bypass request",
	},
}

// PrivilegeEscalationDetector matches attempts to gain elevated access or
// drive the agent into executing commands.
type PrivilegeEscalationDetector struct {
	table []*CompiledPattern
}

func NewPrivilegeEscalationDetector() *PrivilegeEscalationDetector {
	return &PrivilegeEscalationDetector{table: compilePatterns(TypePrivilegeEscalation, privilegeEscalationSpecs)}
}

func (d *PrivilegeEscalationDetector) Name() string { return TypePrivilegeEscalation }

func (d *PrivilegeEscalationDetector) Detect(in Input) (*Finding, error) {
	return scanTable(TypePrivilegeEscalation, d.table, in.Text), nil
}
