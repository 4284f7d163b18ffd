package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/careerconnect/backend/internal/pkg/logger"
	"github.com/careerconnect/backend/internal/server"
)

// @title CareerConnect API
// @version 1.0
// @description API for the CareerConnect mentorship platform

// @contact.name API Support
// @contact.email support@careerconnect.com

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Missing .env is fine; configuration falls back to defaults and real
	// environment variables.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
