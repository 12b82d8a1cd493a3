package googlenl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/provider"
)

const defaultBaseURL = "https://language.googleapis.com/v1"

const apiKeyHeader = "X-Goog-Api-Key"

// maxErrorBody bounds how much of an error response is read for logging.
const maxErrorBody = 4 << 10

// Provider analyzes text with the Google Cloud Natural Language API.
// Calls are never retried; a failed call degrades only the field it serves.
type Provider struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// Option customizes a Provider.
type Option func(*Provider)

// WithBaseURL points the Provider at another endpoint, such as a regional
// gateway or a test server.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// NewProvider creates a Provider against the public Natural Language endpoint
// unless WithBaseURL says otherwise.
func NewProvider(apiKey, language string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Provider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	p := &Provider{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "googlenl"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewProviderWithURL creates a Provider with a custom base URL and defaults
// for everything else.
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return NewProvider(apiKey, "", 0, logger, WithBaseURL(baseURL))
}

// Enabled always reports true.
func (p *Provider) Enabled() bool { return true }

// SentimentOf returns the document sentiment of text.
func (p *Provider) SentimentOf(ctx context.Context, text string) (provider.SentimentResult, error) {
	var resp apiSentimentResponse
	if err := p.call(ctx, "analyzeSentiment", text, &resp); err != nil {
		return provider.SentimentResult{}, err
	}
	if resp.DocumentSentiment == nil {
		return provider.SentimentResult{}, fmt.Errorf("googlenl: analyzeSentiment: missing documentSentiment: %w", provider.ErrUnavailable)
	}

	s := *resp.DocumentSentiment
	if math.IsNaN(s.Score) || math.IsNaN(s.Magnitude) {
		return provider.SentimentResult{}, fmt.Errorf("googlenl: analyzeSentiment: non-numeric sentiment: %w", provider.ErrUnavailable)
	}

	return provider.SentimentResult{Score: s.Score, Magnitude: s.Magnitude}, nil
}

// EntitiesOf returns the named entities of text in detection order.
func (p *Provider) EntitiesOf(ctx context.Context, text string) (provider.EntitiesResult, error) {
	var resp apiEntitiesResponse
	if err := p.call(ctx, "analyzeEntities", text, &resp); err != nil {
		return provider.EntitiesResult{}, err
	}

	entities := make([]domain.Entity, 0, len(resp.Entities))
	for _, e := range resp.Entities {
		entities = append(entities, domain.Entity{
			Name:     e.Name,
			Type:     mapEntityType(e.Type),
			Salience: e.Salience,
		})
	}

	return provider.EntitiesResult{Entities: entities}, nil
}

// SyntaxOf returns the sentence and token split of text.
func (p *Provider) SyntaxOf(ctx context.Context, text string) (provider.SyntaxResult, error) {
	var resp apiSyntaxResponse
	if err := p.call(ctx, "analyzeSyntax", text, &resp); err != nil {
		return provider.SyntaxResult{}, err
	}

	result := provider.SyntaxResult{
		Sentences: make([]domain.Sentence, 0, len(resp.Sentences)),
		Tokens:    make([]domain.Token, 0, len(resp.Tokens)),
	}
	for _, s := range resp.Sentences {
		result.Sentences = append(result.Sentences, domain.Sentence{Text: s.Text.Content})
	}
	for _, t := range resp.Tokens {
		result.Tokens = append(result.Tokens, domain.Token{Text: t.Text.Content})
	}

	return result, nil
}

// call POSTs one document to documents:<method> and decodes the response into out.
func (p *Provider) call(ctx context.Context, method, text string, out any) error {
	payload, err := json.Marshal(apiRequest{
		Document: apiDocument{
			Type:     "PLAIN_TEXT",
			Content:  text,
			Language: p.language,
		},
		EncodingType: "UTF8",
	})
	if err != nil {
		return fmt.Errorf("googlenl: %s: encode request: %w", method, err)
	}

	// The API key goes in a header, never in the URL.
	reqURL := p.baseURL + "/documents:" + method

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("googlenl: %s: create request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, p.apiKey)

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("googlenl: %s: request failed: %w: %w", method, provider.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	p.log.DebugContext(ctx, "googlenl response",
		slog.String("method", method),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("googlenl: %s: %s: %w", method, describeError(resp), provider.ErrUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("googlenl: %s: read body: %w: %w", method, provider.ErrUnavailable, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("googlenl: %s: decode json: %w: %w", method, provider.ErrUnavailable, err)
	}

	return nil
}

// describeError renders a non-200 response, preferring the API error message.
func describeError(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Sprintf("status %d (%s): %s", resp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
	}
	return fmt.Sprintf("unexpected status %d", resp.StatusCode)
}

func mapEntityType(t string) domain.EntityType {
	et := domain.EntityType(t)
	if et.IsValid() {
		return et
	}
	return domain.EntityTypeOther
}
