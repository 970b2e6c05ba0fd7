package app

import (
	"context"
	"testing"

	"jobmatch/internal/config"

	"github.com/stretchr/testify/assert"
)

func matcherNames(cfg config.Config) []string {
	var names []string
	for _, m := range BuildMatchers(context.Background(), cfg, nil) {
		names = append(names, m.Name())
	}
	return names
}

func TestBuildMatchers(t *testing.T) {
	tests := []struct {
		name      string
		providers []string
		want      []string
	}{
		{name: "default cohere", providers: []string{"cohere"}, want: []string{"cohere", "deterministic"}},
		{name: "none configured", providers: nil, want: []string{"deterministic"}},
		{name: "unknown skipped", providers: []string{"bogus", "cohere"}, want: []string{"cohere", "deterministic"}},
		{name: "gemini without key skipped", providers: []string{"gemini", "cohere"}, want: []string{"cohere", "deterministic"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{Recommender: config.RecommenderConfig{Providers: tt.providers}}
			assert.Equal(t, tt.want, matcherNames(cfg))
		})
	}
}
