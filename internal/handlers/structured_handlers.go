package handlers

// Handlers for tools whose output must be a JSON structure rather than free
// text. The model is instructed to answer with an exact JSON shape and the
// reply is recovered with the best-effort extractor; when nothing parseable
// comes back the request fails with the extraction error instead of leaking
// half-formed text to the frontend.

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adapta-ai/backend/internal/ai"
)

// CorrectEssayInput is the body of POST /correct-essay.
type CorrectEssayInput struct {
	Theme  string `json:"theme"`
	Essay  string `json:"essay"`
	UserID string `json:"user_id"`
}

// CorrectEssay grades an essay and returns score, per-competency breakdown
// and feedback. Like the cover-letter tool, the credit check result is
// ignored for logged-in users (see DESIGN.md).
func (h *Handlers) CorrectEssay(c *gin.Context) {
	var input CorrectEssayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.UserID != "" {
		h.Profiles.TryConsumeCredit(c.Request.Context(), input.UserID)
	}

	raw, err := h.AI.Generate(c.Request.Context(), ai.EssayCorrectionPrompt(input.Theme, input.Essay))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	parsed, err := ai.ExtractJSON(raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", parsed)
}

// MockInterviewInput is the body of POST /mock-interview.
type MockInterviewInput struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Experience  string `json:"experience"`
	Description string `json:"description"`
}

// MockInterview generates interview questions with model answers and tips.
func (h *Handlers) MockInterview(c *gin.Context) {
	var input MockInterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prompt := ai.InterviewPrompt(input.Role, input.Company, input.Experience, input.Description)
	raw, err := h.AI.Generate(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	parsed, err := ai.ExtractJSON(raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", parsed)
}
