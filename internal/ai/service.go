// Package ai wraps the Gemini SDK behind the two calls every tool endpoint
// needs: plain text generation and document embeddings. It also owns the
// prompt templates and the structured-output extractor.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const embeddingModel = "text-embedding-004"

// Service holds the Gemini client and the model used for text generation.
type Service struct {
	client    *genai.Client
	modelName string
}

// NewService initializes the Gemini client.
func NewService(ctx context.Context, apiKey, modelName string) (*Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Service{client: client, modelName: modelName}, nil
}

// Generate sends one prompt and returns the full response text. There is no
// retry and no streaming: the call blocks until the provider answers or the
// context is canceled, and provider failures surface as errors for the
// handler to report.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	model := s.client.GenerativeModel(s.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("generation returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("generation returned no text")
	}
	return sb.String(), nil
}

// Embed computes a retrieval embedding for a chunk of document text.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	em := s.client.EmbeddingModel(embeddingModel)
	em.TaskType = genai.TaskTypeRetrievalDocument

	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding returned no values")
	}
	return res.Embedding.Values, nil
}

// Close releases the underlying client.
func (s *Service) Close() error {
	return s.client.Close()
}
