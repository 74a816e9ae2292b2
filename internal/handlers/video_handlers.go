package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adapta-ai/backend/internal/ai"
	"github.com/adapta-ai/backend/internal/youtube"
)

// SummarizeVideoInput is the body of POST /summarize-video.
type SummarizeVideoInput struct {
	URL    string `json:"url"`
	UserID string `json:"user_id"`
}

// SummarizeVideo summarizes a YouTube video from its caption transcript.
// Credit-gated. Videos without captions are a 400, not a 500: there is
// nothing to summarize and the user should pick another video.
func (h *Handlers) SummarizeVideo(c *gin.Context) {
	var input SummarizeVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.gateCredits(c, input.UserID) {
		return
	}

	transcript, err := h.Captions.Transcript(c.Request.Context(), input.URL)
	if errors.Is(err, youtube.ErrNoCaptions) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sem legendas disponíveis neste vídeo."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.AI.Generate(c.Request.Context(), ai.VideoSummaryPrompt(transcript))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
