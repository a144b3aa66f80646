// Backfill: generate shareable codes for all videos that lack one.
// Run once after applying the shareable_code migration.
//
// Requires SUPABASE_URL and SUPABASE_SERVICE_KEY.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/bitemap/web/internal/backfill"
	"github.com/bitemap/web/internal/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	url := os.Getenv("SUPABASE_URL")
	serviceKey := os.Getenv("SUPABASE_SERVICE_KEY")
	if url == "" || serviceKey == "" {
		log.Error().Msg("Missing environment variables: SUPABASE_URL and SUPABASE_SERVICE_KEY")
		os.Exit(1)
	}

	client, err := database.NewClient(strings.TrimRight(url, "/")+"/rest/v1", serviceKey)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create data service client")
		os.Exit(1)
	}

	log.Info().Msg("Starting backfill")

	stats, err := backfill.New(database.NewVideoRepository(client)).Run(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Fatal backfill error")
		os.Exit(1)
	}

	log.Info().
		Int("total", stats.Total).
		Int("success", stats.Success).
		Int("failed", stats.Failed).
		Msg("Done")

	if stats.Failed > 0 {
		os.Exit(1)
	}
}
