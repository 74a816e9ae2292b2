package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adapta-ai/backend/internal/history"
	"github.com/adapta-ai/backend/internal/models"
)

// SaveHistoryInput is the body of POST /save-history.
type SaveHistoryInput struct {
	UserID     string          `json:"user_id"`
	ToolType   string          `json:"tool_type"`
	ToolName   string          `json:"tool_name"`
	InputData  json.RawMessage `json:"input_data"`
	OutputData json.RawMessage `json:"output_data"`
	Metadata   json.RawMessage `json:"metadata"`
}

// SaveHistory persists a tool run on explicit frontend request.
func (h *Handlers) SaveHistory(c *gin.Context) {
	var input SaveHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.UserID == "" || input.ToolType == "" || len(input.InputData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados incompletos"})
		return
	}
	if input.ToolName == "" {
		input.ToolName = "Ferramenta Adapta"
	}

	saved, err := h.History.Save(c.Request.Context(), models.HistoryRecord{
		UserID:     input.UserID,
		ToolType:   input.ToolType,
		ToolName:   input.ToolName,
		InputData:  input.InputData,
		OutputData: input.OutputData,
		Metadata:   input.Metadata,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Histórico salvo!", "data": saved})
}

// GetHistoryInput is the body of POST /get-history.
type GetHistoryInput struct {
	UserID   string `json:"user_id"`
	ToolType string `json:"tool_type"`
	Limit    int    `json:"limit"`
}

// GetHistory lists a user's saved runs, newest first.
func (h *Handlers) GetHistory(c *gin.Context) {
	var input GetHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id obrigatório"})
		return
	}

	records, err := h.History.List(c.Request.Context(), input.UserID, input.ToolType, input.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "history": records})
}

// DeleteHistoryItemInput is the body of POST /delete-history-item.
type DeleteHistoryItemInput struct {
	UserID string `json:"user_id"`
	ItemID int64  `json:"item_id"`
}

// DeleteHistoryItem removes one saved run. Items belonging to other users
// look exactly like missing items.
func (h *Handlers) DeleteHistoryItem(c *gin.Context) {
	var input DeleteHistoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.History.Delete(c.Request.Context(), input.UserID, input.ItemID)
	if errors.Is(err, history.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não autorizado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
