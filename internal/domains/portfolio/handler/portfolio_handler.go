package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type PortfolioHandler struct {
	service portfolio.Service
}

func NewPortfolioHandler(svc portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{service: svc}
}

// Get - GET /api/v1/portfolio
// All-or-nothing: a failed section fails the whole response.
func (h *PortfolioHandler) Get(c *gin.Context) {
	overview, err := h.service.GetOverview(c.Request.Context())
	if err != nil {
		logger.Error("portfolio handler", err)
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, overview)
}
