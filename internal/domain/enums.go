package domain

// FieldType is the declared input type of a form field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTextarea FieldType = "textarea"
)

func (t FieldType) String() string { return string(t) }

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeNumber, FieldTypeTextarea:
		return true
	}
	return false
}

// IsFreeText reports whether values of this type are prose rather than
// a structured token such as an email address or a number.
func (t FieldType) IsFreeText() bool {
	return t == FieldTypeText || t == FieldTypeTextarea
}

// QuestionKind is the kind of quiz question carried by a quiz field.
type QuestionKind string

const (
	QuestionKindMultipleChoice QuestionKind = "multiple_choice"
	QuestionKindFillBlank      QuestionKind = "fill_blank"
	QuestionKindTrueFalse      QuestionKind = "true_false"
)

func (k QuestionKind) String() string { return string(k) }

func (k QuestionKind) IsValid() bool {
	switch k {
	case QuestionKindMultipleChoice, QuestionKindFillBlank, QuestionKindTrueFalse:
		return true
	}
	return false
}

// MatchMode governs case sensitivity when comparing a quiz answer to its key.
type MatchMode string

const (
	MatchModeCaseInsensitive MatchMode = "case_insensitive"
	MatchModeExact           MatchMode = "exact"
)

func (m MatchMode) String() string { return string(m) }

func (m MatchMode) IsValid() bool {
	switch m {
	case MatchModeCaseInsensitive, MatchModeExact:
		return true
	}
	return false
}

// FindingType classifies a validation finding.
type FindingType string

const (
	FindingTypeSentiment FindingType = "sentiment"
	FindingTypeEntity    FindingType = "entity"
	FindingTypeFormat    FindingType = "format"
	FindingTypeLength    FindingType = "length"
	FindingTypeGrammar   FindingType = "grammar"
	FindingTypeStyle     FindingType = "style"
	FindingTypeContent   FindingType = "content"
	FindingTypeQuiz      FindingType = "quiz"
)

func (t FindingType) String() string { return string(t) }

func (t FindingType) IsValid() bool {
	switch t {
	case FindingTypeSentiment, FindingTypeEntity, FindingTypeFormat, FindingTypeLength,
		FindingTypeGrammar, FindingTypeStyle, FindingTypeContent, FindingTypeQuiz:
		return true
	}
	return false
}

// Severity is binary: errors reject a submission, warnings are surfaced for review.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	return s == SeverityWarning || s == SeverityError
}

// SemanticStatus records what happened to a field's semantic evaluation.
type SemanticStatus string

const (
	// SemanticStatusSkipped: the field did not opt in or the value was empty.
	SemanticStatusSkipped SemanticStatus = "skipped"
	// SemanticStatusEvaluated: signals were obtained and all rules ran.
	SemanticStatusEvaluated SemanticStatus = "evaluated"
	// SemanticStatusNeutral: the provider is administratively disabled and
	// answered with neutral signals.
	SemanticStatusNeutral SemanticStatus = "neutral"
	// SemanticStatusNotEvaluated: the provider failed, timed out or returned
	// malformed signals.
	SemanticStatusNotEvaluated SemanticStatus = "not_evaluated"
)

func (s SemanticStatus) String() string { return string(s) }

func (s SemanticStatus) IsValid() bool {
	switch s {
	case SemanticStatusSkipped, SemanticStatusEvaluated, SemanticStatusNeutral, SemanticStatusNotEvaluated:
		return true
	}
	return false
}

// EntityType is the category of a named entity.
type EntityType string

const (
	EntityTypeUnknown      EntityType = "UNKNOWN"
	EntityTypePerson       EntityType = "PERSON"
	EntityTypeLocation     EntityType = "LOCATION"
	EntityTypeOrganization EntityType = "ORGANIZATION"
	EntityTypeEvent        EntityType = "EVENT"
	EntityTypeWorkOfArt    EntityType = "WORK_OF_ART"
	EntityTypeConsumerGood EntityType = "CONSUMER_GOOD"
	EntityTypeOther        EntityType = "OTHER"
	EntityTypePhoneNumber  EntityType = "PHONE_NUMBER"
	EntityTypeAddress      EntityType = "ADDRESS"
	EntityTypeDate         EntityType = "DATE"
	EntityTypeNumber       EntityType = "NUMBER"
	EntityTypePrice        EntityType = "PRICE"
)

func (t EntityType) String() string { return string(t) }

func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeUnknown, EntityTypePerson, EntityTypeLocation, EntityTypeOrganization,
		EntityTypeEvent, EntityTypeWorkOfArt, EntityTypeConsumerGood, EntityTypeOther,
		EntityTypePhoneNumber, EntityTypeAddress, EntityTypeDate, EntityTypeNumber, EntityTypePrice:
		return true
	}
	return false
}
