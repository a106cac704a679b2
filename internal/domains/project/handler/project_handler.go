package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type ProjectHandler struct {
	service project.Service
}

func NewProjectHandler(svc project.Service) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

func respondError(c *gin.Context, err error) {
	switch status := project.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	case http.StatusBadRequest:
		response.ValidationFailed(c, err)
	default:
		logger.Error("project handler", err)
		response.InternalServerError(c)
	}
}

// List - GET /api/v1/projects?limit=20&offset=0&category=&featured=
// Anonymous callers only ever see published projects.
func (h *ProjectHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	p := utils.NormalizePagination(limit, offset)

	filter := project.ProjectFilter{
		Category:      c.Query("category"),
		PublishedOnly: !middleware.IsAdmin(c),
		Limit:         p.Limit,
		Offset:        p.Offset,
	}
	if raw := c.Query("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	projects, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, projects, &response.Meta{
		Limit:   p.Limit,
		Offset:  p.Offset,
		Total:   total,
		HasMore: p.HasMore(total),
	})
}

// Get - GET /api/v1/projects/:slugOrId
// The public detail read counts a view; the admin preview does not.
func (h *ProjectHandler) Get(c *gin.Context) {
	isAdmin := middleware.IsAdmin(c)

	proj, err := h.service.GetBySlugOrID(c.Request.Context(), c.Param("slugOrId"), isAdmin, !isAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, proj)
}

// Create - POST /api/v1/projects (admin)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req project.CreateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	proj, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, proj)
}

// Update - PUT /api/v1/projects/:slugOrId (admin, UUID only)
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("slugOrId"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req project.UpdateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	proj, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, proj)
}

// Delete - DELETE /api/v1/projects/:slugOrId (admin, UUID only)
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("slugOrId"))
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
