package config_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"qtravel/internal/config"
	"qtravel/internal/logger"
)

var Module = fx.Provide(config.LoadConfig, provideLogger)

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.Primary.Env, cfg.Primary.LogLevel)
}
