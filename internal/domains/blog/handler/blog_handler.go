package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler {
	return &BlogHandler{service: svc}
}

func respondError(c *gin.Context, err error) {
	switch status := blog.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	case http.StatusBadRequest:
		response.ValidationFailed(c, err)
	default:
		logger.Error("blog handler", err)
		response.InternalServerError(c)
	}
}

// List - GET /api/v1/blog?limit=20&offset=0&category=&tag=
// Anonymous callers only ever see published posts.
func (h *BlogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	p := utils.NormalizePagination(limit, offset)

	filter := blog.PostFilter{
		Category:      c.Query("category"),
		Tag:           c.Query("tag"),
		PublishedOnly: !middleware.IsAdmin(c),
		Limit:         p.Limit,
		Offset:        p.Offset,
	}

	posts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Limit:   p.Limit,
		Offset:  p.Offset,
		Total:   total,
		HasMore: p.HasMore(total),
	})
}

// Get - GET /api/v1/blog/:slugOrId
// The public detail read counts a view; the admin preview does not.
func (h *BlogHandler) Get(c *gin.Context) {
	isAdmin := middleware.IsAdmin(c)

	post, err := h.service.GetBySlugOrID(c.Request.Context(), c.Param("slugOrId"), isAdmin, !isAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Create - POST /api/v1/blog (admin)
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreatePostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// Update - PUT /api/v1/blog/:slugOrId (admin, UUID only)
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("slugOrId"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req blog.UpdatePostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Delete - DELETE /api/v1/blog/:slugOrId (admin, UUID only)
// Deleting an already-deleted post reports not found, never silent success.
func (h *BlogHandler) Delete(c *gin.Context) {
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
