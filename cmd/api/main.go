package main

import (
	"os"

	"github.com/joho/godotenv"

	"portfolio-backend/pkg/container"
	"portfolio-backend/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	c, err := container.NewContainer()
	if err != nil {
		logger.Error("failed to initialize application", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	if err := c.Config.Validate(); err != nil {
		logger.Error("invalid configuration", err)
		os.Exit(1)
	}

	srv := NewServer(c)
	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", err)
		os.Exit(1)
	}
}
