package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/pkg/container"
	"portfolio-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	container *container.Container
	http      *http.Server
	startedAt time.Time
}

func NewServer(c *container.Container) *Server {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		container: c,
		startedAt: time.Now(),
	}

	s.http = &http.Server{
		Addr:              ":" + c.Config.App.Port,
		Handler:           s.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests before
// returning.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("server listening", map[string]interface{}{
			"addr":        s.http.Addr,
			"environment": s.container.Config.App.Environment,
		})
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", map[string]interface{}{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("server stopped", nil)
	return nil
}
