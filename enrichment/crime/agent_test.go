package crime

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestEnrichReturnsSummary(t *testing.T) {
	g := &fakeGenerator{resp: textResponse("  Austin has below-average violent crime.  ")}
	a := newAgent(g, "")

	text, err := a.Enrich(context.Background(), "Austin, TX")
	require.NoError(t, err)
	assert.Equal(t, "Austin has below-average violent crime.", text)

	assert.Equal(t, defaultModel, g.model)
	require.Len(t, g.contents, 1)
	require.Len(t, g.contents[0].Parts, 1)
	assert.Equal(t, Prompt("Austin, TX"), g.contents[0].Parts[0].Text)
	require.NotNil(t, g.config.SystemInstruction)
	assert.Contains(t, g.config.SystemInstruction.Parts[0].Text, "crime and safety analyst")
}

func TestEnrichPropagatesError(t *testing.T) {
	g := &fakeGenerator{err: errors.New("429 quota")}

	_, err := newAgent(g, "gemini-test").Enrich(context.Background(), "Austin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429 quota")
	assert.Equal(t, "gemini-test", g.model)
}

func TestEnrichEmptyResponse(t *testing.T) {
	g := &fakeGenerator{resp: &genai.GenerateContentResponse{}}

	_, err := newAgent(g, "").Enrich(context.Background(), "Austin")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewAgentRequiresKey(t *testing.T) {
	_, err := NewAgent(context.Background(), "", "")
	assert.Error(t, err)
}
