package emails

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"email-qa-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the emails service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches email routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/emails", h.listEmails)
	rg.POST("/emails", h.uploadEmail)
	rg.GET("/emails/:id", h.getEmail)
}

func (h *Handler) listEmails(c *gin.Context) {
	limit := 50
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	list, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list emails", nil)
		return
	}

	out := make([]Summary, 0, len(list))
	for _, email := range list {
		out = append(out, ToSummary(email))
	}
	respond.OK(c, gin.H{"emails": out})
}

func (h *Handler) uploadEmail(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "html_content is required", nil)
		return
	}

	email, err := h.Svc.Upload(c.Request.Context(), req.Name, req.HTMLContent, req.Metadata)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store email", nil)
		return
	}
	c.Set("emailId", email.ID)

	respond.JSON(c, http.StatusCreated, email)
}

func (h *Handler) getEmail(c *gin.Context) {
	emailID := c.Param("id")
	if emailID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email id is required", nil)
		return
	}
	c.Set("emailId", emailID)

	email, err := h.Svc.Get(c.Request.Context(), emailID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "email not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch email", nil)
		}
		return
	}

	respond.OK(c, email)
}
