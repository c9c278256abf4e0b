package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/finance-tracker/backend/internal/config"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, variables set in the environment win
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the directory for the database
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	// Connect to the database and migrate the schema
	err := models.Connect(cfg.DBPath + "?_pragma=foreign_keys(1)")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config(cfg.BaseURL())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"))

	log.Info().Str("port", cfg.Port).Msg("backend startup complete")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
