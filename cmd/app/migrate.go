package main

import (
	"github.com/spf13/cobra"

	"qtravel/internal/config"
	"qtravel/internal/infra"
	"qtravel/internal/logger"
	"qtravel/internal/models/db_models"
)

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Primary.Env, cfg.Primary.LogLevel)

	storage := cfg.Storage()
	storage.AutoMigrate = false

	db, err := infra.OpenDatabase(storage, log)
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db, log)

	if err := infra.Migrate(db); err != nil {
		return err
	}

	log.Info().
		Str("driver", storage.Driver).
		Str("schema_version", db_models.SchemaVersion).
		Msg("schema is up to date")
	return nil
}
