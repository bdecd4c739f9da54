package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Syug0/LOL-team-assignment/internal/config"
	"github.com/Syug0/LOL-team-assignment/internal/constants"
	fxmodules "github.com/Syug0/LOL-team-assignment/internal/fx"
	"github.com/Syug0/LOL-team-assignment/internal/logger"
	"github.com/Syug0/LOL-team-assignment/internal/middleware"
	"github.com/Syug0/LOL-team-assignment/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	teamServer *server.TeamServer,
	cfg *config.Config,
	log zerolog.Logger,
) {
	level := logger.ApplyLevel(cfg.LogLevel)
	log.Info().Str("level", level.String()).Msg("log level set")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := middleware.RequestID(log)(c.Handler(teamServer.Routes()))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
