package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type healthStatus struct {
	Status      string            `json:"status"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Uptime      string            `json:"uptime"`
	Checks      map[string]string `json:"checks"`
}

// healthHandler probes the database and cache. A database failure degrades
// status to "unhealthy" (503); a cache failure only marks the check, since
// every cache consumer falls back to the database.
func (s *Server) healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := healthStatus{
			Status:      "ok",
			Version:     s.container.Config.App.Version,
			Environment: s.container.Config.App.Environment,
			Uptime:      time.Since(s.startedAt).Round(time.Second).String(),
			Checks:      map[string]string{},
		}

		code := http.StatusOK

		if err := s.container.DB.HealthCheck(c.Request.Context()); err != nil {
			status.Status = "unhealthy"
			status.Checks["database"] = err.Error()
			code = http.StatusServiceUnavailable
		} else {
			status.Checks["database"] = "ok"
		}

		if err := s.container.Cache.Ping(c.Request.Context()); err != nil {
			status.Checks["redis"] = err.Error()
		} else {
			status.Checks["redis"] = "ok"
		}

		c.JSON(code, status)
	}
}
