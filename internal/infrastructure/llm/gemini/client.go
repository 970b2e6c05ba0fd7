// Package gemini adapts the Google GenAI SDK to the recommendation Generator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrEmptyResponse = errors.New("gemini api returned empty response")

// contentGenerator is the slice of genai.Models the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models      contentGenerator
	modelName   string
	temperature float32
	logger      *zap.Logger
}

func NewClient(ctx context.Context, apiKey, model string, temperature float64, log *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newClient(client.Models, model, temperature, log), nil
}

func newClient(models contentGenerator, model string, temperature float64, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}
	return &Client{
		models:      models,
		modelName:   model,
		temperature: float32(temperature),
		logger:      log.Named("gemini"),
	}
}

func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

// Generate returns the text parts of the first candidate, joined by newlines.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.models == nil {
		return "", errors.New("gemini client is not initialized")
	}

	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr(c.temperature)}

	resp, err := c.models.GenerateContent(ctx, c.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	// Only the first candidate is used; its parts are joined.
	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		text := strings.TrimSpace(part.Text)
		if text == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(text)
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("generate ok", zap.String("model", c.modelName), zap.Int("candidates", len(resp.Candidates)))
	return output, nil
}
