package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

// CreateFormInput holds the parameters for creating a form.
type CreateFormInput struct {
	Title       string       `json:"title"       yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Fields      []FieldInput `json:"fields"      yaml:"fields"`
}

// FieldInput describes one field. A non-nil Quiz makes it a quiz field.
type FieldInput struct {
	Label                 string     `json:"label"                             yaml:"label"`
	Type                  string     `json:"type"                              yaml:"type"`
	Required              bool       `json:"required"                          yaml:"required"`
	SemanticCheck         bool       `json:"semantic_check"                    yaml:"semantic_check"`
	ExpectedEntityHint    string     `json:"expected_entity_hint,omitempty"    yaml:"expected_entity_hint"`
	ExpectedSentimentHint string     `json:"expected_sentiment_hint,omitempty" yaml:"expected_sentiment_hint"`
	Quiz                  *QuizInput `json:"quiz,omitempty"                    yaml:"quiz"`
}

// QuizInput is the answer key of a quiz field.
type QuizInput struct {
	Kind          string   `json:"kind"           yaml:"kind"`
	Options       []string `json:"options"        yaml:"options"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer"`
	Points        int      `json:"points"         yaml:"points"`
	MatchMode     string   `json:"match_mode"     yaml:"match_mode"`
}

// Validate checks all fields and collects all errors.
func (i CreateFormInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(i.Fields) == 0 {
		errs = append(errs, domain.FieldError{Field: "fields", Message: "at least one field is required"})
	}
	if len(i.Fields) > MaxFieldsPerForm {
		errs = append(errs, domain.FieldError{Field: "fields", Message: fmt.Sprintf("max %d fields", MaxFieldsPerForm)})
	}

	for idx, f := range i.Fields {
		errs = append(errs, f.validate(fmt.Sprintf("fields[%d]", idx))...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (f FieldInput) validate(prefix string) []domain.FieldError {
	var errs []domain.FieldError

	label := strings.TrimSpace(f.Label)
	if label == "" {
		errs = append(errs, domain.FieldError{Field: prefix + ".label", Message: "required"})
	}
	if len(label) > 200 {
		errs = append(errs, domain.FieldError{Field: prefix + ".label", Message: "max 200 characters"})
	}

	fieldType := f.fieldType()
	if !fieldType.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + ".type", Message: "must be one of text, email, number, textarea"})
	}

	if f.ExpectedEntityHint != "" && !domain.EntityType(strings.ToUpper(f.ExpectedEntityHint)).IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + ".expected_entity_hint", Message: "unknown entity type"})
	}

	switch strings.ToLower(f.ExpectedSentimentHint) {
	case "", domain.SentimentHintPositive, domain.SentimentHintNegative, domain.SentimentHintNeutral:
	default:
		errs = append(errs, domain.FieldError{Field: prefix + ".expected_sentiment_hint", Message: "must be positive, negative or neutral"})
	}

	if f.Quiz != nil {
		if fieldType.IsValid() && !fieldType.IsFreeText() {
			errs = append(errs, domain.FieldError{Field: prefix + ".type", Message: "quiz fields must be text or textarea"})
		}
		errs = append(errs, f.Quiz.validate(prefix+".quiz")...)
	}

	return errs
}

func (q QuizInput) validate(prefix string) []domain.FieldError {
	var errs []domain.FieldError

	kind := domain.QuestionKind(q.Kind)
	if !kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + ".kind", Message: "must be one of multiple_choice, fill_blank, true_false"})
	}

	mode := q.matchMode()
	if !mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + ".match_mode", Message: "must be case_insensitive or exact"})
	}

	if q.Points < 1 {
		errs = append(errs, domain.FieldError{Field: prefix + ".points", Message: "must be at least 1"})
	}

	if strings.TrimSpace(q.CorrectAnswer) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + ".correct_answer", Message: "required"})
		return errs
	}

	switch kind {
	case domain.QuestionKindMultipleChoice:
		if len(q.Options) < 2 {
			errs = append(errs, domain.FieldError{Field: prefix + ".options", Message: "at least two options are required"})
		} else if mode.IsValid() && !containsNormalized(q.Options, q.CorrectAnswer, mode) {
			errs = append(errs, domain.FieldError{Field: prefix + ".correct_answer", Message: "must be one of the options"})
		}
	case domain.QuestionKindTrueFalse:
		switch strings.ToLower(strings.TrimSpace(q.CorrectAnswer)) {
		case "true", "false":
		default:
			errs = append(errs, domain.FieldError{Field: prefix + ".correct_answer", Message: "must be true or false"})
		}
	}

	return errs
}

func (f FieldInput) fieldType() domain.FieldType {
	if f.Type == "" {
		return domain.FieldTypeText
	}
	return domain.FieldType(strings.ToLower(f.Type))
}

func (q QuizInput) matchMode() domain.MatchMode {
	if q.MatchMode == "" {
		return domain.MatchModeCaseInsensitive
	}
	return domain.MatchMode(q.MatchMode)
}

func containsNormalized(options []string, answer string, mode domain.MatchMode) bool {
	want := domain.NormalizeAnswer(answer, mode)
	for _, o := range options {
		if domain.NormalizeAnswer(o, mode) == want {
			return true
		}
	}
	return false
}

// ToDomain builds the form with fresh ids. The input must be valid.
func (i CreateFormInput) ToDomain(ownerID uuid.UUID, now time.Time) domain.Form {
	form := domain.Form{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(i.Title),
		Description: strings.TrimSpace(i.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
		Fields:      make([]domain.Field, len(i.Fields)),
	}

	for idx, f := range i.Fields {
		field := domain.Field{
			ID:                    uuid.New(),
			FormID:                form.ID,
			Position:              idx,
			Label:                 strings.TrimSpace(f.Label),
			Type:                  f.fieldType(),
			Required:              f.Required,
			SemanticCheck:         f.SemanticCheck,
			ExpectedEntityHint:    domain.EntityType(strings.ToUpper(f.ExpectedEntityHint)),
			ExpectedSentimentHint: strings.ToLower(f.ExpectedSentimentHint),
		}
		if f.Quiz != nil {
			field.Quiz = f.Quiz.toDomain()
		}
		form.Fields[idx] = field
	}

	return form
}

func (q QuizInput) toDomain() *domain.QuizData {
	kind := domain.QuestionKind(q.Kind)
	options := q.Options
	if kind == domain.QuestionKindTrueFalse && len(options) == 0 {
		options = []string{"true", "false"}
	}
	return &domain.QuizData{
		Kind:          kind,
		Options:       options,
		CorrectAnswer: strings.TrimSpace(q.CorrectAnswer),
		Points:        q.Points,
		MatchMode:     q.matchMode(),
	}
}

// ListFormsInput holds the pagination parameters for listing forms.
type ListFormsInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListFormsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxPageSize)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListFormsInput) limit() int {
	if i.Limit == 0 {
		return DefaultPageSize
	}
	return i.Limit
}
