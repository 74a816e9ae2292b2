package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adapta-ai/backend/internal/handlers"
)

// CORSMiddleware tells the browser the configured frontend origin may call
// this API, and answers the preflight OPTIONS probe.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", frontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// SetupRouter wires every endpoint to its handler.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware(h.Config.FrontendURL))

	// Liveness
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	// AI tools
	router.POST("/generate-prompt", h.GeneratePrompt)
	router.POST("/generate-veo3-prompt", h.GenerateVideoPrompt)
	router.POST("/summarize-video", h.SummarizeVideo)
	router.POST("/format-abnt", h.FormatABNT)
	router.POST("/summarize-text", h.SummarizeText)
	router.POST("/corporate-translator", h.CorporateTranslator)
	router.POST("/generate-social-media", h.GenerateSocialMedia)
	router.POST("/correct-essay", h.CorrectEssay)
	router.POST("/mock-interview", h.MockInterview)
	router.POST("/generate-study-material", h.GenerateStudyMaterial)
	router.POST("/generate-cover-letter", h.GenerateCoverLetter)

	// File outputs
	router.POST("/download-docx", h.DownloadDocx)
	router.POST("/generate-spreadsheet", h.GenerateSpreadsheet)

	// Document Q&A
	router.POST("/upload-document", h.UploadDocument)
	router.POST("/ask-document", h.AskDocument)

	// Image generation
	router.POST("/generate-image", h.GenerateImage)

	// History
	router.POST("/save-history", h.SaveHistory)
	router.POST("/get-history", h.GetHistory)
	router.POST("/delete-history-item", h.DeleteHistoryItem)

	// Payments
	router.POST("/create-checkout-session", h.CreateCheckoutSession)
	router.POST("/create-portal-session", h.CreatePortalSession)
	router.POST("/webhook", h.StripeWebhook)

	return router
}
