package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logos-backend/internal/shared/server/respond"
	"logos-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the settings store.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches settings routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.getSettings)
	rg.POST("/settings", h.updateSettings)
}

type updateRequest struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

func (h *Handler) getSettings(c *gin.Context) {
	respond.OK(c, h.Store.View())
}

func (h *Handler) updateSettings(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid settings payload", nil)
		return
	}

	view := h.Store.Update(req.APIKey, req.Model)
	telemetry.Info("settings.updated", map[string]any{
		"model":       view.Model,
		"has_api_key": view.HasAPIKey,
	})
	respond.OK(c, view)
}
