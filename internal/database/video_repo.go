package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitemap/web/internal/models"
	"github.com/supabase-community/postgrest-go"
)

// VideoRepository reads the hosted Videos table and carries the two
// write paths of the backfill job. Reads go against "Videos", the
// backfill against "videos"; both spellings exist upstream and the
// REST layer is case sensitive.
type VideoRepository struct {
	client *Client
}

func NewVideoRepository(client *Client) *VideoRepository {
	return &VideoRepository{client: client}
}

func (r *VideoRepository) fetchOne(ctx context.Context, fb *postgrest.FilterBuilder) (*models.Video, error) {
	data, _, err := fb.Limit(1, "").ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}

	var videos []models.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode video row: %w", err)
	}
	if len(videos) == 0 {
		return nil, ErrNotFound
	}
	return &videos[0], nil
}

// GetByShareableCode looks up a video by its shareable code.
func (r *VideoRepository) GetByShareableCode(ctx context.Context, code string) (*models.Video, error) {
	return r.fetchOne(ctx, r.client.rest.From("Videos").Select("*", "", false).
		Eq("shareable_code", code))
}

// GetByCDNVideoID looks up a video by its CDN video id. When several
// rows share the id, rows with a place attached win (place_id
// descending, nulls last).
func (r *VideoRepository) GetByCDNVideoID(ctx context.Context, id string) (*models.Video, error) {
	return r.fetchOne(ctx, r.client.rest.From("Videos").Select("*", "", false).
		Eq("bunny_video_id", id).
		Order("place_id", &postgrest.OrderOpts{Ascending: false}))
}

// GetByID looks up a video by primary key.
func (r *VideoRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {
	return r.fetchOne(ctx, r.client.rest.From("Videos").Select("*", "", false).
		Eq("id", id))
}

// ListMissingCode returns the ids of all videos without a shareable
// code. Used only by the backfill job.
func (r *VideoRepository) ListMissingCode(ctx context.Context) ([]models.Video, error) {
	data, _, err := r.client.rest.From("videos").Select("id", "", false).
		Is("shareable_code", "null").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos without codes: %w", err)
	}

	var videos []models.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode video rows: %w", err)
	}
	return videos, nil
}

// CodeExists reports whether any video already holds the code.
func (r *VideoRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	data, _, err := r.client.rest.From("videos").Select("id", "", false).
		Eq("shareable_code", code).
		Limit(1, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to probe code: %w", err)
	}

	var rows []models.Video
	if err := json.Unmarshal(data, &rows); err != nil {
		return false, fmt.Errorf("failed to decode probe result: %w", err)
	}
	return len(rows) > 0, nil
}

// SetShareableCode writes a code onto a single video row.
func (r *VideoRepository) SetShareableCode(ctx context.Context, id, code string) error {
	_, _, err := r.client.rest.From("videos").
		Update(map[string]string{"shareable_code": code}, "minimal", "").
		Eq("id", id).
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update video %s: %w", id, err)
	}
	return nil
}
