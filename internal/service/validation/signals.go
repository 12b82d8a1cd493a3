package validation

//go:generate moq -out text_signals_mock_test.go -pkg validation ../../provider TextSignals:TextSignalsMock

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/provider"
)

// syntaxMinLength is the text length above which syntax is requested.
const syntaxMinLength = 10

// signalResult is the outcome of obtaining signals for one text.
// Status is Evaluated on success, Neutral when the provider is disabled and
// NotEvaluated when any call failed; Err is set only in the last case.
type signalResult struct {
	Signal domain.TextSignal
	Status domain.SemanticStatus
	Err    error
}

func degraded(err error) signalResult {
	return signalResult{Status: domain.SemanticStatusNotEvaluated, Err: err}
}

// fetchSignals requests sentiment and entities, plus syntax for texts longer
// than syntaxMinLength. Calls are bounded by timeout and never retried.
func fetchSignals(ctx context.Context, sp provider.TextSignals, text string, timeout time.Duration) signalResult {
	if !sp.Enabled() {
		return signalResult{Signal: domain.NeutralSignal(), Status: domain.SemanticStatusNeutral}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sentiment, err := sp.SentimentOf(ctx, text)
	if err != nil {
		return degraded(fmt.Errorf("sentiment: %w", err))
	}

	entities, err := sp.EntitiesOf(ctx, text)
	if err != nil {
		return degraded(fmt.Errorf("entities: %w", err))
	}

	sig := domain.TextSignal{
		SentimentScore:     sentiment.Score,
		SentimentMagnitude: sentiment.Magnitude,
		Entities:           entities.Entities,
	}

	if utf8.RuneCountInString(text) > syntaxMinLength {
		syntax, err := sp.SyntaxOf(ctx, text)
		if err != nil {
			return degraded(fmt.Errorf("syntax: %w", err))
		}
		sig.Sentences = syntax.Sentences
		sig.Tokens = syntax.Tokens
	}

	return signalResult{Signal: sig, Status: domain.SemanticStatusEvaluated}
}

// fetchEntities requests entities only; used for fill-in-the-blank grading.
func fetchEntities(ctx context.Context, sp provider.TextSignals, text string, timeout time.Duration) ([]domain.Entity, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := sp.EntitiesOf(ctx, text)
	if err != nil {
		return nil, err
	}
	return res.Entities, nil
}
