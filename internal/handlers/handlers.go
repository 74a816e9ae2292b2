package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adapta-ai/backend/internal/config"
	"github.com/adapta-ai/backend/internal/documents"
	"github.com/adapta-ai/backend/internal/history"
	"github.com/adapta-ai/backend/internal/payments"
	"github.com/adapta-ai/backend/internal/profile"
)

// TextGenerator produces raw text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces an image URL from a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TranscriptFetcher downloads the caption transcript of a video.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, url string) (string, error)
}

// Handlers holds all dependencies for the HTTP handlers. Everything is
// injected at startup; handlers carry no hidden global state.
type Handlers struct {
	Config    *config.Config
	AI        TextGenerator
	Images    ImageGenerator
	Captions  TranscriptFetcher
	Profiles  *profile.Store
	History   *history.Store
	Documents *documents.Store
	Payments  *payments.Service
}

// Root handles GET / and identifies the service.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "Adapta IA Backend"})
}

// Health handles GET /health.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// gateCredits runs the credit check when the request carries a user id.
// Requests without one skip the gate entirely; the frontend only sends the
// id for logged-in users and anonymous usage is allowed.
// Returns false after writing the 402 response when the user is out of
// credits.
func (h *Handlers) gateCredits(c *gin.Context, userID string) bool {
	if userID == "" {
		return true
	}
	allowed, reason := h.Profiles.TryConsumeCredit(c.Request.Context(), userID)
	if !allowed {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": reason})
		return false
	}
	return true
}
