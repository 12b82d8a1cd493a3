// Package provider defines the boundary between the validation engine and
// external natural-language analysis capabilities.
package provider

import (
	"context"
	"errors"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
)

// ErrUnavailable is returned by adapters when the capability cannot answer
// (network failure, non-2xx status, undecodable body).
var ErrUnavailable = errors.New("text signal provider unavailable")

// SentimentResult is the overall sentiment of a text.
type SentimentResult struct {
	Score     float64
	Magnitude float64
}

// EntitiesResult holds the named entities of a text in detection order.
type EntitiesResult struct {
	Entities []domain.Entity
}

// SyntaxResult holds the sentence and token split of a text.
type SyntaxResult struct {
	Sentences []domain.Sentence
	Tokens    []domain.Token
}

// TextSignals is a natural-language analysis capability.
//
// A disabled implementation reports Enabled() == false and answers every call
// with zero values without performing I/O.
type TextSignals interface {
	SentimentOf(ctx context.Context, text string) (SentimentResult, error)
	EntitiesOf(ctx context.Context, text string) (EntitiesResult, error)
	SyntaxOf(ctx context.Context, text string) (SyntaxResult, error)
	Enabled() bool
}
