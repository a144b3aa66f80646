package database

import (
	"errors"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// ErrNotFound is returned by point lookups that match no row.
var ErrNotFound = errors.New("record not found")

// Client wraps a PostgREST connection to the hosted data service.
type Client struct {
	rest *postgrest.Client
}

// NewClient connects to the data service REST endpoint. The key is
// either the anon key (read paths) or the service key (backfill and
// subscriber writes).
func NewClient(restURL, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing data service key")
	}

	rest := postgrest.NewClient(restURL, "", map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	})
	if rest.ClientError != nil {
		return nil, fmt.Errorf("failed to create postgrest client: %w", rest.ClientError)
	}

	return &Client{rest: rest}, nil
}
