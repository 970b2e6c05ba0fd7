// Package cohere talks to the Cohere text generation endpoint.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL     = "https://api.cohere.ai/v1"
	DefaultModel       = "command"
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.3
	DefaultTimeout     = 10 * time.Second
)

var (
	ErrMissingAPIKey = errors.New("cohere api key not configured")
	ErrRateLimited   = errors.New("cohere rate limit exhausted")
	ErrNoGenerations = errors.New("cohere returned no generations")
)

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	// Temperature nil means DefaultTemperature; zero is sent as zero.
	Temperature *float64
	Timeout     time.Duration
	// RatePerMinute caps outbound calls. Zero disables the limiter.
	RatePerMinute int
}

type Client struct {
	apiKey      string
	endpoint    string
	model       string
	maxTokens   int
	temperature float64
	http        *http.Client
	limiter     *rate.Limiter
	logger      *zap.Logger
}

type generateRequest struct {
	Model             string   `json:"model"`
	Prompt            string   `json:"prompt"`
	MaxTokens         int      `json:"max_tokens"`
	Temperature       float64  `json:"temperature"`
	StopSequences     []string `json:"stop_sequences"`
	ReturnLikelihoods string   `json:"return_likelihoods"`
}

type generateResponse struct {
	ID          string `json:"id"`
	Generations []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"generations"`
}

// NewClient never fails on a missing key; Generate reports ErrMissingAPIKey
// instead so the caller can fall back per request.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	temperature := DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), cfg.RatePerMinute)
	}

	return &Client{
		apiKey:      strings.TrimSpace(cfg.APIKey),
		endpoint:    baseURL + "/generate",
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		http:        &http.Client{Timeout: timeout},
		limiter:     limiter,
		logger:      log.Named("cohere"),
	}
}

func (c *Client) Model() string { return c.model }

// Generate sends one prompt and returns the text of the first generation.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.http == nil {
		return "", errors.New("nil cohere client")
	}
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if c.limiter != nil && !c.limiter.Allow() {
		return "", ErrRateLimited
	}

	b, err := json.Marshal(generateRequest{
		Model:             c.model,
		Prompt:            prompt,
		MaxTokens:         c.maxTokens,
		Temperature:       c.temperature,
		StopSequences:     []string{},
		ReturnLikelihoods: "NONE",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("cohere generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		c.logger.Warn("generate failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", bodyStr),
		)
		return "", fmt.Errorf("cohere generate failed: status=%d body=%s", resp.StatusCode, bodyStr)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode cohere response: %w", err)
	}
	if len(out.Generations) == 0 {
		return "", ErrNoGenerations
	}

	c.logger.Debug("generate ok",
		zap.String("model", c.model),
		zap.Duration("latency", time.Since(start)),
	)
	return out.Generations[0].Text, nil
}
