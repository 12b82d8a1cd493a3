package domain

import (
	"strings"
)

// NormalizeAnswer prepares a quiz answer for comparison:
//   - trims leading/trailing whitespace
//   - case-folds when mode is case_insensitive
//
// Inner whitespace and punctuation are preserved; exact mode performs no
// case-folding.
func NormalizeAnswer(text string, mode MatchMode) string {
	text = strings.TrimSpace(text)
	if mode == MatchModeCaseInsensitive {
		text = strings.ToLower(text)
	}
	return text
}
