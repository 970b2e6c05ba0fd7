package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, &genai.Part{Text: t})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestGenerate_JoinsParts(t *testing.T) {
	fake := &fakeModels{resp: textResponse("[{", "  ", `"id":"a"}]`)}
	c := newClient(fake, "", 0.3, nil)

	out, err := c.Generate(context.Background(), "rank")
	require.NoError(t, err)
	assert.Equal(t, "[{\n\"id\":\"a\"}]", out)
	assert.Equal(t, DefaultModel, fake.model)
	assert.Equal(t, "rank", fake.prompt)
	require.NotNil(t, fake.config)
	assert.InDelta(t, 0.3, *fake.config.Temperature, 1e-6)
}

func TestGenerate_EmptyAndErrors(t *testing.T) {
	_, err := newClient(&fakeModels{resp: &genai.GenerateContentResponse{}}, "m", 0, nil).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = newClient(&fakeModels{resp: nil}, "m", 0, nil).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	boom := errors.New("quota exceeded")
	_, err = newClient(&fakeModels{err: boom}, "m", 0, nil).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), " ", "", 0, nil)
	assert.Error(t, err)
}

func TestGenerate_UsesFirstCandidateOnly(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Parts: []*genai.Part{{Text: `[{"id":"a"}]`}}}},
		{Content: &genai.Content{Parts: []*genai.Part{{Text: `[{"id":"b"}]`}}}},
	}}
	fake := &fakeModels{resp: resp}

	out, err := newClient(fake, "m", 0, nil).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, out)

	require.NotNil(t, fake.config)
	assert.InDelta(t, 0.0, *fake.config.Temperature, 1e-9)
}

func TestGenerate_EmptyFirstCandidate(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Parts: []*genai.Part{{Text: "  "}}}},
		{Content: &genai.Content{Parts: []*genai.Part{{Text: `[{"id":"b"}]`}}}},
	}}

	_, err := newClient(&fakeModels{resp: resp}, "m", 0.3, nil).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
