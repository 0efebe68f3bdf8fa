package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/talentscout/internal/ai"
	"github.com/spigell/talentscout/internal/ai/gemini"
	"github.com/spigell/talentscout/internal/ai/openrouter"
	"github.com/spigell/talentscout/internal/logger"
	"github.com/spigell/talentscout/internal/secrets"
)

const (
	providerOpenRouter = "openrouter"
	providerGemini     = "gemini"
)

func newGenerator(ctx context.Context, cfg *AIConfig) (ai.Generator, string, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider == "" {
		provider = providerOpenRouter
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  provider + " api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
	})
	if err != nil {
		return nil, provider, fmt.Errorf("%w (set ai.api-key-file or TALENTSCOUT_API_KEY)", err)
	}

	switch provider {
	case providerOpenRouter:
		g, err := openrouter.NewGenerator(openrouter.Config{
			APIKey:  apiKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, provider, err
		}
		return g, provider, nil
	case providerGemini:
		g, err := gemini.NewGenerator(ctx, apiKey, cfg.Model)
		if err != nil {
			return nil, provider, err
		}
		return g, provider, nil
	default:
		return nil, provider, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}

// newCaller builds the generation client behind the retry policy shared by
// question generation and answer evaluation.
func newCaller(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Caller, error) {
	generator, provider, err := newGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	genLogger := logger.WithProvider(log, provider, generator.Model()).With(
		zap.Int("ai_retry_attempts", cfg.Retry.Attempts),
		zap.Duration("ai_retry_base_delay", cfg.Retry.BaseDelay),
	)

	return ai.NewRetrier(generator, ai.RetryConfig{
		Attempts:     cfg.Retry.Attempts,
		BaseDelay:    cfg.Retry.BaseDelay,
		MaxLogLength: cfg.MaxLogLength,
	}, genLogger), nil
}
