package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitemap/web/internal/api"
	"github.com/bitemap/web/internal/config"
	"github.com/bitemap/web/internal/database"
	"github.com/bitemap/web/internal/mail"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	app := &api.App{Development: cfg.Server.Development()}

	if cfg.Supabase.AnonKey != "" {
		readClient, err := database.NewClient(cfg.Supabase.RestURL(), cfg.Supabase.AnonKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create data service client")
		}
		app.Videos = database.NewVideoRepository(readClient)
		app.Creators = database.NewCreatorRepository(readClient)
		app.Places = database.NewPlaceRepository(readClient)
	} else {
		log.Warn().Msg("SUPABASE_ANON_KEY not set, video previews will return 500")
	}

	if cfg.Supabase.ServiceKey != "" {
		writeClient, err := database.NewClient(cfg.Supabase.RestURL(), cfg.Supabase.ServiceKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create data service write client")
		}
		app.Subscribers = database.NewSubscriberRepository(writeClient)
	} else {
		log.Warn().Msg("SUPABASE_SERVICE_KEY not set, subscribers will be logged only")
	}

	if cfg.SMTP.Configured() {
		app.Mailer = mail.New(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP not configured, form submissions will be logged only")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.NewRouter(app),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
}
