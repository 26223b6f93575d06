package crime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.5-flash"

	systemInstruction = "You are a crime and safety analyst. Your job is to find the latest crime " +
		"statistics and safety information for a given location. Provide a brief, easy-to-read summary."
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("crime: empty response from model")

// generator is the slice of the GenAI client the agent depends on.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Agent produces a short crime and safety summary for a city using Gemini.
type Agent struct {
	models generator
	model  string
}

// NewAgent creates an Agent backed by the Gemini API.
func NewAgent(ctx context.Context, apiKey, model string) (*Agent, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("crime: GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("crime: create GenAI client: %w", err)
	}

	return newAgent(client.Models, model), nil
}

func newAgent(g generator, model string) *Agent {
	if model == "" {
		model = defaultModel
	}
	return &Agent{models: g, model: model}
}

// Prompt is the request sent for city.
func Prompt(city string) string {
	return fmt.Sprintf("Research the crime and safety statistics for %s.", city)
}

// Enrich returns the model's safety summary for city.
func (a *Agent) Enrich(ctx context.Context, city string) (string, error) {
	resp, err := a.models.GenerateContent(ctx, a.model,
		genai.Text(Prompt(city)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("crime: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
