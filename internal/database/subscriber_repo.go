package database

import (
	"context"
	"fmt"

	"github.com/bitemap/web/internal/models"
)

// SubscriberRepository writes waitlist signups to the hosted
// subscribers table. Requires the service key.
type SubscriberRepository struct {
	client *Client
}

func NewSubscriberRepository(client *Client) *SubscriberRepository {
	return &SubscriberRepository{client: client}
}

func (r *SubscriberRepository) Insert(ctx context.Context, sub *models.Subscriber) error {
	_, _, err := r.client.rest.From("subscribers").
		Insert(sub, false, "", "minimal", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return nil
}
