package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Form is an authored form definition.
type Form struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Fields      []Field
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasQuiz reports whether any field of the form carries quiz data.
func (f *Form) HasQuiz() bool {
	return slices.ContainsFunc(f.Fields, func(fd Field) bool { return fd.IsQuiz() })
}

// FieldKind distinguishes the two shapes a field record can take.
type FieldKind string

const (
	FieldKindPlain FieldKind = "plain"
	FieldKindQuiz  FieldKind = "quiz"
)

// Field is one input slot of a form. A field is either plain (Quiz == nil)
// or a quiz field with its own structured QuizData sub-record.
// Fields are immutable for the lifetime of a validation run.
type Field struct {
	ID                    uuid.UUID
	FormID                uuid.UUID
	Position              int
	Label                 string
	Type                  FieldType
	Required              bool
	SemanticCheck         bool
	ExpectedEntityHint    EntityType
	ExpectedSentimentHint string
	Quiz                  *QuizData
}

// Kind returns FieldKindQuiz when the field carries quiz data.
func (f Field) Kind() FieldKind {
	if f.Quiz != nil {
		return FieldKindQuiz
	}
	return FieldKindPlain
}

// IsQuiz reports whether the field carries quiz data.
func (f Field) IsQuiz() bool { return f.Quiz != nil }

// QuizData is the answer key of a quiz field.
type QuizData struct {
	Kind          QuestionKind
	Options       []string
	CorrectAnswer string
	Points        int
	MatchMode     MatchMode
}

// Expected sentiment hint values.
const (
	SentimentHintPositive = "positive"
	SentimentHintNegative = "negative"
	SentimentHintNeutral  = "neutral"
)
