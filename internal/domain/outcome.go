package domain

import "github.com/google/uuid"

// QuizResult is the grading result of one quiz field.
type QuizResult struct {
	Correct       bool
	PointsAwarded int
	PointsMax     int
}

// FieldResult is everything the engine concluded about one field.
type FieldResult struct {
	FieldID  uuid.UUID
	Findings []Finding
	Semantic SemanticStatus
	Quiz     *QuizResult
}

// NotEvaluated reports whether the field's semantic evaluation was degraded.
func (r FieldResult) NotEvaluated() bool {
	return r.Semantic == SemanticStatusNotEvaluated
}

// SubmissionOutcome is the result of evaluating one submission attempt.
// Accepted is true iff no field's findings contain an error.
type SubmissionOutcome struct {
	Accepted bool
	// Fields are in form declaration order.
	Fields []FieldResult
	// QuizScore is nil for forms without quiz fields.
	QuizScore    *int
	QuizMaxScore int
}

// FindingsByField maps field id to its ordered findings.
// Fields without findings map to an empty slice.
func (o SubmissionOutcome) FindingsByField() map[uuid.UUID][]Finding {
	out := make(map[uuid.UUID][]Finding, len(o.Fields))
	for _, f := range o.Fields {
		findings := f.Findings
		if findings == nil {
			findings = []Finding{}
		}
		out[f.FieldID] = findings
	}
	return out
}

// Field returns the result for the given field id.
func (o SubmissionOutcome) Field(id uuid.UUID) (FieldResult, bool) {
	for _, f := range o.Fields {
		if f.FieldID == id {
			return f, true
		}
	}
	return FieldResult{}, false
}

// ErrorCount returns the number of error-severity findings.
func (o SubmissionOutcome) ErrorCount() int {
	n := 0
	for _, f := range o.Fields {
		for _, fd := range f.Findings {
			if fd.IsError() {
				n++
			}
		}
	}
	return n
}

// NotEvaluatedFields returns ids of fields whose semantic evaluation degraded.
func (o SubmissionOutcome) NotEvaluatedFields() []uuid.UUID {
	var ids []uuid.UUID
	for _, f := range o.Fields {
		if f.NotEvaluated() {
			ids = append(ids, f.FieldID)
		}
	}
	return ids
}
