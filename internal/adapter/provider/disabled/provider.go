package disabled

import (
	"context"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/provider"
)

// Provider is the text signal provider used when analysis is
// administratively disabled. It answers every call with neutral
// constants and never performs I/O.
type Provider struct{}

// NewProvider creates a disabled provider.
func NewProvider() *Provider { return &Provider{} }

// Enabled always reports false.
func (p *Provider) Enabled() bool { return false }

// SentimentOf returns a zero score and magnitude.
func (p *Provider) SentimentOf(ctx context.Context, text string) (provider.SentimentResult, error) {
	return provider.SentimentResult{}, nil
}

// EntitiesOf returns no entities.
func (p *Provider) EntitiesOf(ctx context.Context, text string) (provider.EntitiesResult, error) {
	return provider.EntitiesResult{Entities: []domain.Entity{}}, nil
}

// SyntaxOf returns no sentences and no tokens.
func (p *Provider) SyntaxOf(ctx context.Context, text string) (provider.SyntaxResult, error) {
	return provider.SyntaxResult{Sentences: []domain.Sentence{}, Tokens: []domain.Token{}}, nil
}
