package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/adapta-ai/backend/internal/ai"
	"github.com/adapta-ai/backend/internal/config"
	"github.com/adapta-ai/backend/internal/documents"
	"github.com/adapta-ai/backend/internal/handlers"
	"github.com/adapta-ai/backend/internal/history"
	"github.com/adapta-ai/backend/internal/imagegen"
	"github.com/adapta-ai/backend/internal/logger"
	"github.com/adapta-ai/backend/internal/payments"
	"github.com/adapta-ai/backend/internal/profile"
	"github.com/adapta-ai/backend/internal/routes"
	"github.com/adapta-ai/backend/internal/supabase"
	"github.com/adapta-ai/backend/internal/youtube"
)

func main() {
	// .env is optional; production injects real environment variables.
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn("no .env file found, relying on system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	// --- External clients ---
	db, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		logger.Log.Fatalf("failed to create Supabase client: %v", err)
	}

	aiService, err := ai.NewService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Fatalf("failed to initialize Gemini service: %v", err)
	}
	defer aiService.Close()
	logger.Log.WithField("model", cfg.GeminiModel).Info("Gemini model configured")

	var imageService handlers.ImageGenerator
	if cfg.ReplicateToken != "" {
		imageService, err = imagegen.NewService(cfg.ReplicateToken)
		if err != nil {
			logger.Log.Fatalf("failed to initialize Replicate service: %v", err)
		}
	} else {
		logger.Log.Warn("REPLICATE_API_TOKEN not set, /generate-image will fail")
		imageService = imagegen.Unconfigured{}
	}

	// --- Application setup ---
	// All dependencies are injected into the Handlers struct; there is no
	// package-level client state.
	app := &handlers.Handlers{
		Config:    cfg,
		AI:        aiService,
		Images:    imageService,
		Captions:  youtube.NewService(),
		Profiles:  profile.NewStore(db),
		History:   history.NewStore(db),
		Documents: documents.NewStore(db, aiService),
		Payments:  payments.NewService(cfg.StripeSecretKey, cfg.StripePriceID, cfg.StripeWebhookSecret, cfg.FrontendURL),
	}

	router := routes.SetupRouter(app)

	logger.Log.Infof("starting Adapta IA backend on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("server exited: %v", err)
	}
}
