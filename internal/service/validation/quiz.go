package validation

import (
	"slices"
	"strings"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

const issueNearMatch = "Close but may not be exactly correct"

// QuizSignals are the entity signals consulted for fill-in-the-blank
// near-matches: entities of the submitted answer and of the answer key.
type QuizSignals struct {
	Answer []domain.Entity
	Key    []domain.Entity
}

// GradeResult is the outcome of grading one quiz answer.
type GradeResult struct {
	Correct bool
	Finding *domain.Finding
}

// QuizGrader compares submitted answers with quiz answer keys.
// It is stateless; the zero value is ready to use.
type QuizGrader struct{}

// Grade grades answer against q. sig may be nil; it only widens the
// fill-in-the-blank near-match through shared entity names.
//
// Fill-in-the-blank grading is deliberately lenient: containment in either
// direction is a near-match (warning, not error). Very short keys therefore
// match almost any answer containing them; this boundary is kept as is.
func (QuizGrader) Grade(q domain.QuizData, answer string, sig *QuizSignals) GradeResult {
	got := domain.NormalizeAnswer(answer, q.MatchMode)
	want := domain.NormalizeAnswer(q.CorrectAnswer, q.MatchMode)

	if got == "" {
		return incorrect(domain.SeverityError, "No answer provided", correctionFor(q))
	}

	if got == want {
		return GradeResult{Correct: true}
	}

	switch q.Kind {
	case domain.QuestionKindFillBlank:
		if nearMatch(got, want, sig, q.MatchMode) {
			return incorrect(domain.SeverityWarning, issueNearMatch, q.CorrectAnswer)
		}
		return incorrect(domain.SeverityError, "Incorrect answer", q.CorrectAnswer)
	default:
		issue := "Incorrect answer"
		if q.Kind == domain.QuestionKindMultipleChoice && len(q.Options) > 0 && !isOption(got, q) {
			issue = "Selected answer is not one of the available options"
		}
		return incorrect(domain.SeverityError, issue, correctionFor(q))
	}
}

func incorrect(sev domain.Severity, issue, correction string) GradeResult {
	f := domain.NewFinding(domain.FindingTypeQuiz, sev, issue, correction)
	return GradeResult{Correct: false, Finding: &f}
}

func correctionFor(q domain.QuizData) string {
	if q.Kind == domain.QuestionKindFillBlank {
		return q.CorrectAnswer
	}
	return "Correct answer: " + q.CorrectAnswer
}

func isOption(normalized string, q domain.QuizData) bool {
	return slices.ContainsFunc(q.Options, func(o string) bool {
		return domain.NormalizeAnswer(o, q.MatchMode) == normalized
	})
}

// nearMatch reports containment between the normalized strings in either
// direction, or between any entity name of the answer and of the key.
func nearMatch(got, want string, sig *QuizSignals, mode domain.MatchMode) bool {
	if want != "" && (strings.Contains(got, want) || strings.Contains(want, got)) {
		return true
	}
	if sig == nil {
		return false
	}

	for _, a := range sig.Answer {
		an := domain.NormalizeAnswer(a.Name, mode)
		if an == "" {
			continue
		}
		for _, k := range sig.Key {
			kn := domain.NormalizeAnswer(k.Name, mode)
			if kn == "" {
				continue
			}
			if strings.Contains(an, kn) || strings.Contains(kn, an) {
				return true
			}
		}
	}
	return false
}
