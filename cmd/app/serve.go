package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"qtravel/cmd/fx/config_fx"
	"qtravel/cmd/fx/controllers_fx"
	"qtravel/cmd/fx/db_fx"
	"qtravel/cmd/fx/feedback_fx"
	"qtravel/cmd/fx/history_fx"
	"qtravel/cmd/fx/itinerary_fx"
	"qtravel/cmd/fx/memcache_fx"
	"qtravel/cmd/fx/trip_fx"
	"qtravel/cmd/fx/user_fx"
	"qtravel/internal/config"
)

func runServe(cmd *cobra.Command, args []string) error {
	app := fx.New(
		fx.NopLogger,
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		user_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		feedback_fx.Module,
		history_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)

	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, log zerolog.Logger, engine *gin.Engine) {
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			log.Info().Str("addr", server.Addr).Str("env", cfg.Primary.Env).Msg("starting HTTP server")

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server stopped")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
