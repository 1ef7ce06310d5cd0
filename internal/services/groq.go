package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// groqBackend speaks the OpenAI-compatible chat-completions protocol. The
// same type serves both Groq variants: a larger model for scoring and a
// smaller one for narrative tasks, differing only in the model name.
type groqBackend struct {
	name    string
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewGroqBackend(name, apiKey, baseURL, model string, timeout time.Duration) ScoreBackend {
	return &groqBackend{
		name:    name,
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name implements ScoreBackend.
func (g *groqBackend) Name() string {
	return g.name
}

// Complete implements ScoreBackend.
func (g *groqBackend) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": g.model,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": prompt,
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &BackendUnavailable{Backend: g.name, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		g.baseURL+"/chat/completions",
		bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &BackendUnavailable{Backend: g.name, Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &BackendUnavailable{Backend: g.name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &BackendUnavailable{Backend: g.name, Err: fmt.Errorf("API error: %d", resp.StatusCode)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &BackendUnavailable{Backend: g.name, Err: err}
	}

	if result.Error.Message != "" {
		return "", &BackendUnavailable{Backend: g.name, Err: fmt.Errorf("API error: %s", result.Error.Message)}
	}

	if len(result.Choices) == 0 {
		return "", &BackendUnavailable{Backend: g.name, Err: fmt.Errorf("no choices in response")}
	}

	return result.Choices[0].Message.Content, nil
}
