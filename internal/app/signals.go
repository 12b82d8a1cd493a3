package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/formcheck-backend/internal/adapter/provider/disabled"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/provider/googlenl"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/provider/llmsignal"
	"github.com/heartmarshall/formcheck-backend/internal/config"
	"github.com/heartmarshall/formcheck-backend/internal/provider"
)

// NewSignalProvider builds the text signal provider selected by cfg.Provider.
func NewSignalProvider(ctx context.Context, cfg config.SignalsConfig, logger *slog.Logger) (provider.TextSignals, error) {
	switch cfg.Provider {
	case "", config.SignalProviderDisabled:
		return disabled.NewProvider(), nil

	case config.SignalProviderGoogle:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("signals: google API key is required")
		}
		return googlenl.NewProvider(cfg.APIKey, cfg.Language, cfg.HTTPTimeout, logger,
			googlenl.WithBaseURL(cfg.BaseURL)), nil

	case config.SignalProviderAnthropic, config.SignalProviderOpenAI, config.SignalProviderGemini:
		p, err := llmsignal.New(ctx, llmsignal.Config{
			Backend:   cfg.Provider,
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			BaseURL:   cfg.BaseURL,
			MaxTokens: cfg.MaxTokens,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("signals: %w", err)
		}
		return p, nil

	default:
		return nil, fmt.Errorf("signals: unknown provider %q", cfg.Provider)
	}
}
