package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/achievement"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type AchievementHandler struct {
	service achievement.Service
}

func NewAchievementHandler(svc achievement.Service) *AchievementHandler {
	return &AchievementHandler{service: svc}
}

func respondError(c *gin.Context, err error) {
	switch status := achievement.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.ValidationFailed(c, err)
	default:
		logger.Error("achievement handler", err)
		response.InternalServerError(c)
	}
}

// List - GET /api/v1/achievements?limit=20&offset=0
func (h *AchievementHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	p := utils.NormalizePagination(limit, offset)

	achievements, total, err := h.service.List(c.Request.Context(), achievement.AchievementFilter{
		Limit:  p.Limit,
		Offset: p.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, achievements, &response.Meta{
		Limit:   p.Limit,
		Offset:  p.Offset,
		Total:   total,
		HasMore: p.HasMore(total),
	})
}

// Get - GET /api/v1/achievements/:id
func (h *AchievementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Create - POST /api/v1/achievements (admin)
func (h *AchievementHandler) Create(c *gin.Context) {
	var req achievement.CreateAchievementRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// Update - PUT /api/v1/achievements/:id (admin)
func (h *AchievementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req achievement.UpdateAchievementRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Delete - DELETE /api/v1/achievements/:id (admin)
func (h *AchievementHandler) Delete(c *gin.Context) {
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
