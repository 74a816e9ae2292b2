// Package testutil holds function-field mocks shared by handler tests.
package testutil

import (
	"context"
	"errors"
)

// MockTextGenerator is a mock implementation of the handlers.TextGenerator
// interface for testing.
type MockTextGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	// Prompts records every prompt sent, in order.
	Prompts []string
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", errors.New("not implemented")
}

// MockImageGenerator is a mock implementation of the handlers.ImageGenerator
// interface for testing.
type MockImageGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", errors.New("not implemented")
}

// MockTranscriptFetcher is a mock implementation of the
// handlers.TranscriptFetcher interface for testing.
type MockTranscriptFetcher struct {
	TranscriptFunc func(ctx context.Context, url string) (string, error)
}

func (m *MockTranscriptFetcher) Transcript(ctx context.Context, url string) (string, error) {
	if m.TranscriptFunc != nil {
		return m.TranscriptFunc(ctx, url)
	}
	return "", errors.New("not implemented")
}
