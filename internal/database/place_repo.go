package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitemap/web/internal/models"
)

// PlaceRepository reads the hosted Places table.
type PlaceRepository struct {
	client *Client
}

func NewPlaceRepository(client *Client) *PlaceRepository {
	return &PlaceRepository{client: client}
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*models.Place, error) {
	data, _, err := r.client.rest.From("Places").
		Select("id,name,address,city,latitude,longitude,rating,google_maps_url", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query place: %w", err)
	}

	var places []models.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("failed to decode place row: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrNotFound
	}
	return &places[0], nil
}
