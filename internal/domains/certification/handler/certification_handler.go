package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/certification"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type CertificationHandler struct {
	service certification.Service
}

func NewCertificationHandler(svc certification.Service) *CertificationHandler {
	return &CertificationHandler{service: svc}
}

func respondError(c *gin.Context, err error) {
	switch status := certification.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.ValidationFailed(c, err)
	default:
		logger.Error("certification handler", err)
		response.InternalServerError(c)
	}
}

// List - GET /api/v1/certifications?limit=20&offset=0
func (h *CertificationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	p := utils.NormalizePagination(limit, offset)

	certs, total, err := h.service.List(c.Request.Context(), certification.CertificationFilter{
		Limit:  p.Limit,
		Offset: p.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, certs, &response.Meta{
		Limit:   p.Limit,
		Offset:  p.Offset,
		Total:   total,
		HasMore: p.HasMore(total),
	})
}

// Get - GET /api/v1/certifications/:id
func (h *CertificationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	cert, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cert)
}

// Create - POST /api/v1/certifications (admin)
func (h *CertificationHandler) Create(c *gin.Context) {
	var req certification.CreateCertificationRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cert, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, cert)
}

// Update - PUT /api/v1/certifications/:id (admin)
func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req certification.UpdateCertificationRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cert, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cert)
}

// Delete - DELETE /api/v1/certifications/:id (admin)
func (h *CertificationHandler) Delete(c *gin.Context) {
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
