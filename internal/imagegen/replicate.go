// Package imagegen generates images through Replicate's SDXL model.
package imagegen

import (
	"context"
	"fmt"

	"github.com/replicate/replicate-go"
)

// sdxlModel pins the exact model version so output stays reproducible.
const sdxlModel = "stability-ai/sdxl:39ed52f2a78e934b3ba6e2a89f5b1c712de7dfea535525255b1aa35c5565e08b"

// Service wraps the Replicate client.
type Service struct {
	client *replicate.Client
}

// NewService creates a Replicate-backed image generator.
func NewService(token string) (*Service, error) {
	if token == "" {
		return nil, fmt.Errorf("replicate API token is required")
	}
	client, err := replicate.NewClient(replicate.WithToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create Replicate client: %w", err)
	}
	return &Service{client: client}, nil
}

// Unconfigured is the generator used when no Replicate token is set.
// Requests reach the handler and fail there with a clear message instead of
// crashing startup for deployments that don't sell image generation.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("image generation is not configured (missing REPLICATE_API_TOKEN)")
}

// Generate runs SDXL on the prompt and returns the URL of the first output
// image. The call blocks until the prediction finishes.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	input := replicate.PredictionInput{
		"prompt":              prompt,
		"num_outputs":         1,
		"num_inference_steps": 30,
		"guidance_scale":      7.5,
		"width":               1024,
		"height":              1024,
		"scheduler":           "DPMSolverMultistep",
		"negative_prompt":     "blurry, low quality, distorted, ugly, deformed",
	}

	output, err := s.client.Run(ctx, sdxlModel, input, nil)
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}

	switch v := output.(type) {
	case []interface{}:
		if len(v) == 0 {
			return "", fmt.Errorf("image generation returned no outputs")
		}
		url, ok := v[0].(string)
		if !ok {
			return "", fmt.Errorf("unexpected image output type %T", v[0])
		}
		return url, nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("unexpected image output type %T", output)
	}
}
