package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds every external dependency setting the server needs.
// It is loaded once at startup and passed by reference into the handlers,
// so there is no hidden process-wide state.
type Config struct {
	Port string `env:"PORT,default=5000"`

	// Gemini
	GeminiAPIKey string `env:"GOOGLE_API_KEY,required"`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-2.0-flash-lite-001"`

	// Supabase (profiles, history, documents)
	SupabaseURL string `env:"SUPABASE_URL,required"`
	SupabaseKey string `env:"SUPABASE_KEY,required"`

	// Stripe
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripePriceID       string `env:"STRIPE_PRICE_ID"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`

	// Replicate (image generation)
	ReplicateToken string `env:"REPLICATE_API_TOKEN"`

	FrontendURL string `env:"FRONTEND_URL,default=http://localhost:5173"`
}

// Load decodes the configuration from the environment. The caller is
// expected to have loaded a .env file beforehand if one exists.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment config: %w", err)
	}
	return &cfg, nil
}
