package main

import (
	"os"

	"github.com/majadash/admin-console/internal/mockapi"
	"github.com/majadash/admin-console/internal/mockapi/store"
	"github.com/majadash/admin-console/internal/pkg/config"
	"github.com/majadash/admin-console/pkg/logger"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	s, err := store.New(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}

	e := mockapi.NewRouter(s, cfg.JWTSecret, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("mock API listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
