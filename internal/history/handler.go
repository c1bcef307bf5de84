package history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"logos-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the history repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.listHistory)
	rg.GET("/history/:id", h.getHistory)
	rg.DELETE("/history/:id", h.deleteHistory)
}

func (h *Handler) listHistory(c *gin.Context) {
	records, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list history", nil)
		return
	}
	if records == nil {
		records = []Record{}
	}
	respond.OK(c, gin.H{"history": records, "success": true})
}

func (h *Handler) getHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "history item not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch history item", nil)
		}
		return
	}
	respond.OK(c, rec)
}

func (h *Handler) deleteHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "history item not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete history item", nil)
		}
		return
	}
	c.Set("historyId", id)
	respond.OK(c, gin.H{"success": true, "message": "history item deleted"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "history id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
