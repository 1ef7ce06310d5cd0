package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiBackendName = "Google Gemini"

type geminiBackend struct {
	client    *genai.Client
	modelName string
}

// NewGeminiBackend builds the Gemini-class backend on the official SDK.
func NewGeminiBackend(apiKey, modelName string) (ScoreBackend, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiBackend{
		client:    client,
		modelName: modelName,
	}, nil
}

// Name implements ScoreBackend.
func (g *geminiBackend) Name() string {
	return geminiBackendName
}

// Complete implements ScoreBackend.
func (g *geminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", &BackendUnavailable{Backend: geminiBackendName, Err: err}
	}

	if resp == nil {
		return "", &BackendUnavailable{Backend: geminiBackendName, Err: fmt.Errorf("nil response")}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &BackendUnavailable{Backend: geminiBackendName, Err: fmt.Errorf("no text content in response")}
	}

	return text, nil
}
