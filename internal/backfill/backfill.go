package backfill

import (
	"context"
	"fmt"

	"github.com/bitemap/web/internal/models"
	"github.com/bitemap/web/internal/shortcode"
	"github.com/rs/zerolog/log"
)

// Store is the slice of the video repository the backfill needs.
type Store interface {
	ListMissingCode(ctx context.Context) ([]models.Video, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	SetShareableCode(ctx context.Context, id, code string) error
}

// Stats reports what a run did.
type Stats struct {
	Total   int
	Success int
	Failed  int
}

// Runner assigns shareable codes to videos that lack one. Rows are
// processed one at a time so the collision probe stays auditable.
type Runner struct {
	store Store
	codes *shortcode.Generator
}

func New(store Store) *Runner {
	return &Runner{
		store: store,
		codes: shortcode.NewGenerator(store),
	}
}

// Run is idempotent: rows that already carry a code are never
// selected, so a second run finds nothing to do. Exhausting the
// collision retries aborts the whole run; that many collisions in a
// 58^7 space means the probe itself is broken.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	videos, err := r.store.ListMissingCode(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to fetch videos: %w", err)
	}

	stats := Stats{Total: len(videos)}
	if len(videos) == 0 {
		log.Info().Msg("All videos already have shareable codes")
		return stats, nil
	}

	log.Info().Int("count", len(videos)).Msg("Found videos without shareable codes")

	for _, video := range videos {
		code, err := r.codes.Unique(ctx)
		if err != nil {
			return stats, fmt.Errorf("video %s: %w", video.ID, err)
		}

		if err := r.store.SetShareableCode(ctx, video.ID, code); err != nil {
			log.Error().Err(err).Str("video_id", video.ID).Msg("Failed to update video")
			stats.Failed++
			continue
		}

		stats.Success++
		if stats.Success%10 == 0 {
			log.Info().Int("done", stats.Success).Int("total", stats.Total).Msg("Generating codes")
		}
	}

	log.Info().Int("success", stats.Success).Int("failed", stats.Failed).Msg("Backfill complete")
	return stats, nil
}
