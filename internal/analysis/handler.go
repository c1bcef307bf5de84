package analysis

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logos-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

type analyzeRequest struct {
	Text           string `json:"text"`
	ReaderLanguage string `json:"reader_language"`
}

// analyze returns the domain envelope with status 200 for pipeline
// failures; only transport-level problems use the error body.
func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid analyze payload", nil)
		return
	}
	if req.ReaderLanguage == "" {
		req.ReaderLanguage = "EN"
	}

	outcome := h.Svc.Analyze(c.Request.Context(), req.Text, req.ReaderLanguage)

	c.Set("genre", outcome.Genre)
	c.Set("detectedLanguage", outcome.DetectedLanguage)
	if outcome.HistoryID != 0 {
		c.Set("historyId", outcome.HistoryID)
	}

	respond.OK(c, outcome)
}
