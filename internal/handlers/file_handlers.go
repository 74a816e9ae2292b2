package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adapta-ai/backend/internal/ai"
	"github.com/adapta-ai/backend/internal/docgen"
	"github.com/adapta-ai/backend/internal/logger"
)

// DownloadDocxInput is the body of POST /download-docx.
type DownloadDocxInput struct {
	MarkdownText string `json:"markdown_text"`
}

// DownloadDocx converts previously generated text into a .docx attachment.
func (h *Handlers) DownloadDocx(c *gin.Context) {
	var input DownloadDocxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buf, err := docgen.BuildDocx(input.MarkdownText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("doc-%s.docx", uuid.New().String()[:8])
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, docgen.DocxMIME, buf.Bytes())
}

// GenerateSpreadsheetInput is the body of POST /generate-spreadsheet.
type GenerateSpreadsheetInput struct {
	Prompt string `json:"prompt"`
}

// GenerateSpreadsheet asks the model for tabular JSON data and renders it as
// a styled .xlsx attachment. When the model output cannot be parsed the
// sheet degrades to a single visible error row instead of failing.
func (h *Handlers) GenerateSpreadsheet(c *gin.Context) {
	var input GenerateSpreadsheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := h.AI.Generate(c.Request.Context(), ai.SpreadsheetPrompt(input.Prompt))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows, err := ai.ExtractJSONArray(raw)
	if err != nil {
		logger.Log.WithError(err).Warn("spreadsheet data extraction failed, writing error row")
		rows = json.RawMessage(`[{"Erro": "Falha ao gerar dados"}]`)
	}

	buf, err := docgen.BuildSpreadsheet(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("planilha-%s.xlsx", uuid.New().String()[:8])
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, docgen.XlsxMIME, buf.Bytes())
}
