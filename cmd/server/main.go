package main

import (
	"errors"
	"log"

	"github.com/hanaburkart/portfolio/internal/config"
	"github.com/hanaburkart/portfolio/internal/content"
	"github.com/hanaburkart/portfolio/internal/logger"
	"github.com/hanaburkart/portfolio/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logger := logger.SetupLogger(cfg)

	profile, err := content.Load(cfg.ContentPath)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}
	if err := profile.Validate(); err != nil && !errors.Is(err, content.ErrNoPhrases) {
		log.Fatalf("Invalid profile: %v", err)
	}

	// Log startup information
	logger.Info("Starting portfolio server",
		"env", cfg.Env,
		"port", cfg.Port,
		"phrases", len(profile.Phrases),
	)

	if err := server.Run(server.New(cfg, profile, logger)); err != nil {
		logger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
