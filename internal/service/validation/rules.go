package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/formcheck-backend/internal/config"
	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	emailInvalidChars = regexp.MustCompile(`[^A-Za-z0-9._%+\-@]`)
	numericLabelHint  = regexp.MustCompile(`(?i)\b(number|amount|quantity|count)\b`)
	signedDecimal     = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)
)

// Issue texts.
const (
	issueRequired     = "This field is required"
	issueEmail        = "Please enter a valid email address"
	issueNumber       = "Please enter a valid number"
	issueTooShort     = "Response seems too short"
	issueProfanity    = "Response contains inappropriate language"
	issueShouting     = "Response uses excessive capital letters"
	issueSpecialChars = "Response contains an unusual amount of special characters"

	emailGenericAdvice = "Enter an email address in the form name@example.com"
)

// RuleValidator runs deterministic, signal-free checks on one value.
// It holds no mutable state; Validate is safe for concurrent use.
type RuleValidator struct {
	minLength        int
	maxLength        int
	shoutingRatio    float64
	specialCharRatio float64
	sanitizer        *Sanitizer
}

// NewRuleValidator creates a RuleValidator with the given thresholds.
func NewRuleValidator(cfg config.ValidationConfig, sanitizer *Sanitizer) *RuleValidator {
	return &RuleValidator{
		minLength:        cfg.MinLength,
		maxLength:        cfg.MaxLength,
		shoutingRatio:    cfg.ShoutingRatio,
		specialCharRatio: cfg.SpecialCharRatio,
		sanitizer:        sanitizer,
	}
}

// Validate returns the findings for value in a stable order:
// required, email shape, numeric shape, length, profanity, shouting,
// special characters. Empty optional values produce no findings.
func (v *RuleValidator) Validate(field domain.Field, value string) []domain.Finding {
	var findings []domain.Finding

	if strings.TrimSpace(value) == "" {
		if field.Required {
			findings = append(findings, domain.NewFinding(domain.FindingTypeFormat, domain.SeverityError, issueRequired, ""))
		}
		return findings
	}

	if field.Type == domain.FieldTypeEmail {
		if f, ok := checkEmail(value); !ok {
			findings = append(findings, f)
		}
	}

	if wantsNumber(field) {
		if f, ok := checkNumber(value); !ok {
			findings = append(findings, f)
		}
	}

	if field.Type.IsFreeText() && !field.IsQuiz() {
		findings = append(findings, v.checkLength(value)...)
	}

	// Profanity applies to every declared type.
	if v.sanitizer.HasProfanity(value) {
		findings = append(findings, domain.NewFinding(domain.FindingTypeContent, domain.SeverityError,
			issueProfanity, v.sanitizer.CleanProfanity(value)))
	}

	// Style checks. Structured values (email, number) are covered by their
	// shape checks above.
	if !field.Type.IsFreeText() {
		return findings
	}

	if v.isShouting(value) {
		findings = append(findings, domain.NewFinding(domain.FindingTypeStyle, domain.SeverityWarning,
			issueShouting, sentenceCase(value)))
	}

	if v.hasSpecialCharOverload(value) {
		findings = append(findings, domain.NewFinding(domain.FindingTypeStyle, domain.SeverityWarning,
			issueSpecialChars, ""))
	}

	return findings
}

func checkEmail(value string) (domain.Finding, bool) {
	if emailPattern.MatchString(value) {
		return domain.Finding{}, true
	}

	candidate := emailInvalidChars.ReplaceAllString(value, "")
	correction := candidate
	if !strings.Contains(candidate, "@") {
		correction = emailGenericAdvice
	}

	return domain.NewFinding(domain.FindingTypeFormat, domain.SeverityError, issueEmail, correction), false
}

// wantsNumber reports whether the field expects a numeric value, either by
// declared type or by a label hint on a non-email field.
func wantsNumber(field domain.Field) bool {
	if field.Type == domain.FieldTypeNumber {
		return true
	}
	return field.Type != domain.FieldTypeEmail && numericLabelHint.MatchString(field.Label)
}

func checkNumber(value string) (domain.Finding, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return domain.Finding{}, true
	}

	return domain.NewFinding(domain.FindingTypeFormat, domain.SeverityError, issueNumber,
		signedDecimal.FindString(value)), false
}

func (v *RuleValidator) checkLength(value string) []domain.Finding {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < v.minLength {
		return []domain.Finding{domain.NewFinding(domain.FindingTypeLength, domain.SeverityWarning, issueTooShort, "")}
	}
	if n := utf8.RuneCountInString(value); n > v.maxLength {
		return []domain.Finding{domain.NewFinding(domain.FindingTypeLength, domain.SeverityWarning,
			fmt.Sprintf("Response is very long (%d characters); consider splitting it into shorter parts", n), "")}
	}
	return nil
}

func (v *RuleValidator) isShouting(value string) bool {
	if utf8.RuneCountInString(value) <= 5 {
		return false
	}
	var letters, upper int
	for _, r := range value {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return letters > 0 && float64(upper)/float64(letters) > v.shoutingRatio
}

func (v *RuleValidator) hasSpecialCharOverload(value string) bool {
	total := utf8.RuneCountInString(value)
	if total <= 10 {
		return false
	}
	var special int
	for _, r := range value {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			special++
		}
	}
	return float64(special)/float64(total) > v.specialCharRatio
}
