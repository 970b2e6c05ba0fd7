package app

import (
	"context"

	"jobmatch/internal/config"
	"jobmatch/internal/infrastructure/llm/cohere"
	"jobmatch/internal/infrastructure/llm/gemini"
	"jobmatch/internal/recommendation"

	"go.uber.org/zap"
)

const (
	providerCohere = "cohere"
	providerGemini = "gemini"
)

// BuildMatchers turns the configured provider list into primary matchers and
// always ends the chain with the deterministic matcher. Cohere joins the
// chain even without a key so each request logs the failure and falls back.
func BuildMatchers(ctx context.Context, cfg config.Config, log *zap.Logger) []recommendation.Matcher {
	if log == nil {
		log = zap.NewNop()
	}

	matchers := make([]recommendation.Matcher, 0, len(cfg.Recommender.Providers)+1)
	for _, name := range cfg.Recommender.Providers {
		switch name {
		case providerCohere:
			temperature := cfg.Cohere.Temperature
			if cfg.Cohere.APIKey == "" {
				log.Warn("cohere api key not configured, recommendations will use the deterministic matcher")
			}
			client := cohere.NewClient(cohere.Config{
				APIKey:        cfg.Cohere.APIKey,
				BaseURL:       cfg.Cohere.BaseURL,
				Model:         cfg.Cohere.Model,
				MaxTokens:     cfg.Cohere.MaxTokens,
				Temperature:   &temperature,
				Timeout:       cfg.Cohere.Timeout,
				RatePerMinute: cfg.Cohere.RatePerMinute,
			}, log)
			matchers = append(matchers, recommendation.NewPrimaryMatcher(client, recommendation.PrimaryConfig{
				Name:         providerCohere,
				Timeout:      cfg.Cohere.Timeout,
				MaxLogLength: cfg.Recommender.MaxLogLength,
			}, log))

		case providerGemini:
			client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Cohere.Temperature, log)
			if err != nil {
				log.Warn("gemini provider disabled", zap.Error(err))
				continue
			}
			matchers = append(matchers, recommendation.NewPrimaryMatcher(client, recommendation.PrimaryConfig{
				Name:         providerGemini,
				Timeout:      cfg.Gemini.Timeout,
				MaxLogLength: cfg.Recommender.MaxLogLength,
			}, log))

		default:
			log.Warn("unknown recommender provider ignored", zap.String("provider", name))
		}
	}

	return append(matchers, recommendation.NewDeterministicMatcher())
}
