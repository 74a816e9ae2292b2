package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adapta-ai/backend/internal/ai"
	"github.com/adapta-ai/backend/internal/documents"
)

// UploadDocument handles POST /upload-document (multipart: user_id, file).
// The PDF text is chunked, embedded and indexed for later questions.
// Credit-gated; unlike the JSON tools the user id is mandatory here because
// the chunks are stored per user.
func (h *Handlers) UploadDocument(c *gin.Context) {
	userID := c.PostForm("user_id")
	fileHeader, err := c.FormFile("file")
	if userID == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados faltando"})
		return
	}

	if !h.gateCredits(c, userID) {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	text, err := documents.ExtractPDFText(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	docID, err := h.Documents.Ingest(c.Request.Context(), userID, fileHeader.Filename, text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "document_id": docID})
}

// AskDocumentInput is the body of POST /ask-document.
type AskDocumentInput struct {
	UserID   string `json:"user_id"`
	Question string `json:"question"`
}

// AskDocument answers a question grounded on the user's uploaded documents
// via vector-similarity retrieval.
func (h *Handlers) AskDocument(c *gin.Context) {
	var input AskDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chunks, err := h.Documents.Search(c.Request.Context(), input.UserID, input.Question)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prompt := ai.DocumentAnswerPrompt(strings.Join(chunks, "\n"), input.Question)
	answer, err := h.AI.Generate(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
