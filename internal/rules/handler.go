package rules

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"email-qa-backend/internal/shared/server/respond"
)

// Handler wires admin HTTP handlers to the rules service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches rule administration routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/rules", h.listRules)
	rg.PUT("/admin/rules/:id", h.updateRule)
	rg.GET("/admin/scoring-formula", h.getFormula)
	rg.PUT("/admin/scoring-formula", h.updateFormula)
}

func (h *Handler) listRules(c *gin.Context) {
	configs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list rule configurations", nil)
		return
	}
	respond.OK(c, gin.H{"rules": configs})
}

func (h *Handler) updateRule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "rule id is required", nil)
		return
	}

	var patch UpdatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid rule configuration payload", nil)
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "rule configuration not found", nil)
		case errors.Is(err, ErrInvalidConfig):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update rule configuration", nil)
		}
		return
	}
	respond.OK(c, updated)
}

func (h *Handler) getFormula(c *gin.Context) {
	description, err := h.Svc.Formula(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch scoring formula", nil)
		return
	}
	respond.OK(c, gin.H{"description": description})
}

func (h *Handler) updateFormula(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "description is required", nil)
		return
	}

	stored, err := h.Svc.UpdateFormula(c.Request.Context(), req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidConfig):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update scoring formula", nil)
		}
		return
	}
	respond.OK(c, gin.H{"description": stored})
}
