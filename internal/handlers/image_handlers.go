package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adapta-ai/backend/internal/logger"
)

// minImagePromptLength keeps obviously empty prompts away from the paid
// image provider.
const minImagePromptLength = 5

// GenerateImageInput is the body of POST /generate-image.
type GenerateImageInput struct {
	Prompt string `json:"prompt"`
	UserID string `json:"user_id"`
}

// GenerateImage runs the image provider on the prompt and returns the image
// URL. Credit-gated. The gate runs before the prompt-length check; a failed
// generation after a successful deduction is not refunded.
func (h *Handlers) GenerateImage(c *gin.Context) {
	var input GenerateImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.gateCredits(c, input.UserID) {
		return
	}

	if len(input.Prompt) < minImagePromptLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt muito curto."})
		return
	}

	imageURL, err := h.Images.Generate(c.Request.Context(), input.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Erro interno: %s", err.Error())})
		return
	}

	// Best effort: the user already has the URL, a failed history insert
	// should not fail the request.
	if input.UserID != "" {
		if err := h.History.SaveImage(c.Request.Context(), input.UserID, input.Prompt, imageURL); err != nil {
			logger.Log.WithError(err).Warn("failed to save image history")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"image_url": imageURL,
		"prompt":    input.Prompt,
	})
}
