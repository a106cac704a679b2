package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{service: svc}
}

func respondError(c *gin.Context, err error) {
	switch status := contact.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.ValidationFailed(c, err)
	default:
		logger.Error("contact handler", err)
		response.InternalServerError(c)
	}
}

// Submit - POST /api/v1/contact (public, rate-limited upstream)
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.CreateSubmissionRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	clientIP := middleware.GetClientIPFromContext(c.Request.Context())

	sub, err := h.service.Submit(c.Request.Context(), &req, clientIP)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sub)
}

// List - GET /api/v1/contact?limit=20&offset=0&unread= (admin)
func (h *ContactHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	p := utils.NormalizePagination(limit, offset)

	filter := contact.SubmissionFilter{
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if raw := c.Query("unread"); raw != "" {
		if unread, err := strconv.ParseBool(raw); err == nil {
			filter.Unread = &unread
		}
	}

	submissions, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, submissions, &response.Meta{
		Limit:   p.Limit,
		Offset:  p.Offset,
		Total:   total,
		HasMore: p.HasMore(total),
	})
}

// ToggleRead - PUT /api/v1/contact/:id/read (admin)
func (h *ContactHandler) ToggleRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	sub, err := h.service.ToggleRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, sub)
}

// Delete - DELETE /api/v1/contact/:id (admin)
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
