package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adapta-ai/backend/internal/ai"
)

// GeneratePromptInput is the body of POST /generate-prompt.
type GeneratePromptInput struct {
	Idea   string `json:"idea"`
	Style  string `json:"style"`
	UserID string `json:"user_id"`
}

// GeneratePrompt turns a rough idea into a polished image-generation prompt.
func (h *Handlers) GeneratePrompt(c *gin.Context) {
	var input GeneratePromptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Credit gate intentionally disabled for this tool: prompt engineering
	// stays free so anonymous visitors can try the product.

	if input.Idea == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A ideia é obrigatória"})
		return
	}
	if input.Style == "" {
		input.Style = "Cinematográfico (Padrão)"
	}

	text, err := h.AI.Generate(c.Request.Context(), ai.ImagePrompt(input.Idea, input.Style))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := strings.TrimSpace(text)
	c.JSON(http.StatusOK, gin.H{
		"prompt":          result,
		"advanced_prompt": result,
	})
}

// GenerateVideoPromptInput is the body of POST /generate-veo3-prompt.
// The frontend sends the scene description as either "scene" or "idea".
type GenerateVideoPromptInput struct {
	Scene    string `json:"scene"`
	Idea     string `json:"idea"`
	Style    string `json:"style"`
	Camera   string `json:"camera"`
	Lighting string `json:"lighting"`
	Audio    string `json:"audio"`
	Model    string `json:"model"`
}

// GenerateVideoPrompt builds a cinematography prompt for video models
// (Sora/Veo).
func (h *Handlers) GenerateVideoPrompt(c *gin.Context) {
	var input GenerateVideoPromptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea := input.Idea
	if idea == "" {
		idea = input.Scene
	}
	if idea == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Descreva a cena do vídeo."})
		return
	}
	if input.Style == "" {
		input.Style = "Cinematográfico"
	}
	if input.Camera == "" {
		input.Camera = "Cinematic Gimbal"
	}

	prompt := ai.VideoPrompt(idea, input.Style, input.Camera, input.Lighting, input.Audio)
	text, err := h.AI.Generate(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompt": strings.TrimSpace(text)})
}
