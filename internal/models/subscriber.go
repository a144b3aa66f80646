package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is a waitlist signup persisted to the hosted subscribers
// table.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSubscriber(email, source string) *Subscriber {
	if source == "" {
		source = "landing_page"
	}
	return &Subscriber{
		ID:        uuid.New().String(),
		Email:     email,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}
