package qa

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"email-qa-backend/internal/emails"
	"email-qa-backend/internal/shared/server/respond"
)

// Handler wires the QA run endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches QA routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/emails/:id/qa", h.runQA)
}

func (h *Handler) runQA(c *gin.Context) {
	emailID := c.Param("id")
	if emailID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email id is required", nil)
		return
	}
	c.Set("emailId", emailID)

	report, err := h.Svc.RunQA(c.Request.Context(), emailID)
	if err != nil {
		switch {
		case errors.Is(err, emails.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "email not found", nil)
		case errors.Is(err, ErrEmptyContent):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "email has no html content to analyze", nil)
		case errors.Is(err, ErrScoringInvariant):
			respond.Error(c, http.StatusInternalServerError, "scoring_invariant", "scoring produced an out-of-range result", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "run_cancelled", "qa run was cancelled before scoring", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "qa run failed", nil)
		}
		return
	}
	c.Set("reportId", report.ID)

	respond.OK(c, report)
}
