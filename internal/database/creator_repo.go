package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitemap/web/internal/models"
)

// CreatorRepository reads the hosted Creator table.
type CreatorRepository struct {
	client *Client
}

func NewCreatorRepository(client *Client) *CreatorRepository {
	return &CreatorRepository{client: client}
}

func (r *CreatorRepository) GetByID(ctx context.Context, id string) (*models.Creator, error) {
	data, _, err := r.client.rest.From("Creator").Select("id,name,image_url", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query creator: %w", err)
	}

	var creators []models.Creator
	if err := json.Unmarshal(data, &creators); err != nil {
		return nil, fmt.Errorf("failed to decode creator row: %w", err)
	}
	if len(creators) == 0 {
		return nil, ErrNotFound
	}
	return &creators[0], nil
}
