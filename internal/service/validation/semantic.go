package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/formcheck-backend/internal/config"
	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

// ErrMalformedSignal is returned by SemanticValidator.Analyze when the
// signals violate their value ranges.
var ErrMalformedSignal = errors.New("malformed text signal")

// Label patterns for the name/company plausibility rule.
//
// Company intent is decided FIRST: a label containing company, organization
// or business is a company field even if it also contains "name"
// ("Company Name"). Changing this precedence changes which submissions are
// accepted.
var (
	identityLabel = regexp.MustCompile(`(?i)name|company|organization|business`)
	companyLabel  = regexp.MustCompile(`(?i)company|organization|business`)
)

// positiveHintFloor is the score below which a field expecting a positive
// answer gets a tone warning.
const positiveHintFloor = -0.25

const neutralLanguageAdvice = "Consider rephrasing using more neutral language"

// SemanticValidator turns text signals plus field metadata into findings.
// It holds no mutable state; Analyze is safe for concurrent use.
type SemanticValidator struct {
	warnThreshold  float64
	errorThreshold float64
	sanitizer      *Sanitizer
}

// NewSemanticValidator creates a SemanticValidator with the given tone thresholds.
func NewSemanticValidator(cfg config.ValidationConfig, sanitizer *Sanitizer) *SemanticValidator {
	return &SemanticValidator{
		warnThreshold:  cfg.NegativeWarnThreshold,
		errorThreshold: cfg.NegativeErrorThreshold,
		sanitizer:      sanitizer,
	}
}

// Analyze evaluates the semantic rules for a non-empty value. Neutral
// signals make every rule pass. The only error is ErrMalformedSignal.
func (v *SemanticValidator) Analyze(field domain.Field, value string, sig domain.TextSignal) ([]domain.Finding, error) {
	if err := checkSignal(sig); err != nil {
		return nil, err
	}
	if sig.Neutral || strings.TrimSpace(value) == "" {
		return nil, nil
	}

	var findings []domain.Finding

	if f, ok := v.checkTone(field, value, sig); ok {
		findings = append(findings, f)
	}
	if f, ok := checkPlausibility(field, sig); ok {
		findings = append(findings, f)
	}
	if f, ok := checkIncomplete(value, sig); ok {
		findings = append(findings, f)
	}
	if f, ok := checkRepetition(value); ok {
		findings = append(findings, f)
	}

	return findings, nil
}

func checkSignal(sig domain.TextSignal) error {
	if !finite(sig.SentimentScore) || sig.SentimentScore < -1 || sig.SentimentScore > 1 {
		return fmt.Errorf("%w: sentiment score %v outside [-1, 1]", ErrMalformedSignal, sig.SentimentScore)
	}
	if !finite(sig.SentimentMagnitude) || sig.SentimentMagnitude < 0 {
		return fmt.Errorf("%w: sentiment magnitude %v must be a non-negative number", ErrMalformedSignal, sig.SentimentMagnitude)
	}
	for i, e := range sig.Entities {
		if !finite(e.Salience) || e.Salience < 0 {
			return fmt.Errorf("%w: entity %d salience %v must be a non-negative number", ErrMalformedSignal, i, e.Salience)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (v *SemanticValidator) checkTone(field domain.Field, value string, sig domain.TextSignal) (domain.Finding, bool) {
	score := sig.SentimentScore

	if score < v.warnThreshold {
		severity := domain.SeverityWarning
		issue := "Response has a negative tone"
		if score < v.errorThreshold {
			severity = domain.SeverityError
			issue = "Response has a strongly negative tone"
		}

		correction := neutralLanguageAdvice
		if v.sanitizer.HasAny(value) {
			correction = v.sanitizer.Clean(value)
		}
		return domain.NewFinding(domain.FindingTypeSentiment, severity, issue, correction), true
	}

	if strings.EqualFold(field.ExpectedSentimentHint, domain.SentimentHintPositive) && score < positiveHintFloor {
		return domain.NewFinding(domain.FindingTypeSentiment, domain.SeverityWarning,
			"Response tone does not match the positive tone this question expects", ""), true
	}

	return domain.Finding{}, false
}

// checkPlausibility requires an ORGANIZATION entity for company fields and a
// PERSON entity for name fields. Quiz fields are exempt. Fields whose label
// matches neither may still request an entity type through ExpectedEntityHint,
// which yields a warning rather than an error.
func checkPlausibility(field domain.Field, sig domain.TextSignal) (domain.Finding, bool) {
	if field.IsQuiz() {
		return domain.Finding{}, false
	}

	if identityLabel.MatchString(field.Label) {
		if companyLabel.MatchString(field.Label) {
			if sig.HasEntity(domain.EntityTypeOrganization) {
				return domain.Finding{}, false
			}
			return domain.NewFinding(domain.FindingTypeEntity, domain.SeverityError,
				"This does not look like a valid company name", "e.g. Acme Corporation"), true
		}
		if sig.HasEntity(domain.EntityTypePerson) {
			return domain.Finding{}, false
		}
		return domain.NewFinding(domain.FindingTypeEntity, domain.SeverityError,
			"This does not look like a valid name", "e.g. Jane Smith"), true
	}

	hint := field.ExpectedEntityHint
	if hint == "" || !hint.IsValid() || sig.HasEntity(hint) {
		return domain.Finding{}, false
	}
	return domain.NewFinding(domain.FindingTypeEntity, domain.SeverityWarning,
		fmt.Sprintf("Expected the response to mention a %s", describeEntityType(hint)), ""), true
}

func describeEntityType(t domain.EntityType) string {
	return strings.ToLower(strings.ReplaceAll(string(t), "_", " "))
}

func checkIncomplete(value string, sig domain.TextSignal) (domain.Finding, bool) {
	n := utf8.RuneCountInString(value)
	if n <= 10 {
		return domain.Finding{}, false
	}

	short := 0
	for _, s := range sig.Sentences {
		l := utf8.RuneCountInString(strings.TrimSpace(s.Text))
		if l > 0 && l < 5 {
			short++
		}
	}
	if short == 0 || n <= 20 {
		return domain.Finding{}, false
	}

	return domain.NewFinding(domain.FindingTypeGrammar, domain.SeverityWarning,
		"Some sentences appear incomplete", ""), true
}

// checkRepetition flags the most frequent token longer than 3 characters
// that occurs more than 3 times. Ties go to the token seen first.
func checkRepetition(value string) (domain.Finding, bool) {
	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(strings.ToLower(value)) {
		if utf8.RuneCountInString(tok) <= 3 {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	best, bestCount := "", 0
	for _, tok := range order {
		if c := counts[tok]; c > 3 && c > bestCount {
			best, bestCount = tok, c
		}
	}
	if bestCount == 0 {
		return domain.Finding{}, false
	}

	return domain.NewFinding(domain.FindingTypeStyle, domain.SeverityWarning,
		fmt.Sprintf("The word %q is repeated %d times", best, bestCount), ""), true
}
