package domain

// Finding is one reported problem with a submitted value.
type Finding struct {
	Type       FindingType `json:"type"`
	Issue      string      `json:"issue"`
	Correction *string     `json:"correction"`
	Severity   Severity    `json:"severity"`
}

// IsError reports whether the finding rejects the submission.
func (f Finding) IsError() bool { return f.Severity == SeverityError }

// NewFinding builds a finding with an optional correction.
// An empty correction is stored as nil.
func NewFinding(t FindingType, sev Severity, issue, correction string) Finding {
	f := Finding{Type: t, Issue: issue, Severity: sev}
	if correction != "" {
		f.Correction = &correction
	}
	return f
}

// ContainsError reports whether any finding has error severity.
func ContainsError(findings []Finding) bool {
	for _, f := range findings {
		if f.IsError() {
			return true
		}
	}
	return false
}
