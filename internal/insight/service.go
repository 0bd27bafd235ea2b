// Package insight generates marketing and performance copy through
// the Gemini text API. The controller absorbs every failure into a
// fixed per-kind fallback string so pages never deal with errors.
package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// TextService is the single seam to the generation backend; tests
// stub it.
type TextService interface {
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
}

// GeminiService implements TextService on top of the Gemini API.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService builds the production text service.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{client: client, model: model}, nil
}

// Complete runs one generation call and returns the plain text.
func (s *GeminiService) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents,
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}
	return result.Text(), nil
}

// Name identifies the backing model, for the doctor command.
func (s *GeminiService) Name() string {
	return fmt.Sprintf("genai:%s", s.model)
}
