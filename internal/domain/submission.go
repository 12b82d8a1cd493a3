package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission is an accepted, persisted form submission.
type Submission struct {
	ID              uuid.UUID
	FormID          uuid.UUID
	ClientAttemptID *string
	QuizScore       *int
	QuizMaxScore    int
	WarningCount    int
	SubmittedAt     time.Time
	Answers         []Answer
}

// Answer is one persisted field answer of a submission.
type Answer struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	FieldID      uuid.UUID
	Value        string
	Findings     []Finding
	AnswerFlags
	QuizCorrect   *bool
	PointsAwarded int
}

// AnswerFlags are boolean summaries kept alongside the findings list
// for querying without decoding findings.
type AnswerFlags struct {
	SentimentFlag bool
	EntityFlag    bool
	NotEvaluated  bool
}

// DeriveAnswerFlags computes the legacy flags from a field result.
func DeriveAnswerFlags(r FieldResult) AnswerFlags {
	var flags AnswerFlags
	for _, f := range r.Findings {
		switch f.Type {
		case FindingTypeSentiment:
			flags.SentimentFlag = true
		case FindingTypeEntity:
			flags.EntityFlag = true
		}
	}
	flags.NotEvaluated = r.NotEvaluated()
	return flags
}

// NewAnswer builds the persisted answer for a field result.
func NewAnswer(submissionID uuid.UUID, value string, r FieldResult) Answer {
	a := Answer{
		SubmissionID: submissionID,
		FieldID:      r.FieldID,
		Value:        value,
		Findings:     r.Findings,
		AnswerFlags:  DeriveAnswerFlags(r),
	}
	if a.Findings == nil {
		a.Findings = []Finding{}
	}
	if r.Quiz != nil {
		correct := r.Quiz.Correct
		a.QuizCorrect = &correct
		a.PointsAwarded = r.Quiz.PointsAwarded
	}
	return a
}
