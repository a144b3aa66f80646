package backfill

import (
	"context"
	"errors"
	"testing"

	"github.com/bitemap/web/internal/models"
	"github.com/bitemap/web/internal/shortcode"
)

type memStore struct {
	videos         map[string]string // id -> code ("" = missing)
	listErr        error
	updateErr      error
	probeAlwaysHit bool
	updates        int
}

func (s *memStore) ListMissingCode(ctx context.Context) ([]models.Video, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var videos []models.Video
	for id, code := range s.videos {
		if code == "" {
			videos = append(videos, models.Video{ID: id})
		}
	}
	return videos, nil
}

func (s *memStore) CodeExists(ctx context.Context, code string) (bool, error) {
	if s.probeAlwaysHit {
		return true, nil
	}
	for _, c := range s.videos {
		if c == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) SetShareableCode(ctx context.Context, id, code string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.videos[id] = code
	s.updates++
	return nil
}

func TestRunAssignsUniqueCodes(t *testing.T) {
	store := &memStore{videos: map[string]string{
		"v1": "", "v2": "", "v3": "", "v4": "aBc1234",
	}}

	stats, err := New(store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Total != 3 || stats.Success != 3 || stats.Failed != 0 {
		t.Errorf("stats = %+v", stats)
	}

	seen := make(map[string]bool)
	for id, code := range store.videos {
		if code == "" {
			t.Errorf("video %s left without code", id)
			continue
		}
		if len(code) != shortcode.Length {
			t.Errorf("video %s code %q has wrong length", id, code)
		}
		if seen[code] {
			t.Errorf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestRunIsIdempotent(t *testing.T) {
	store := &memStore{videos: map[string]string{"v1": "", "v2": ""}}
	runner := New(store)

	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	first := store.updates

	stats, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("second run total = %d, want 0", stats.Total)
	}
	if store.updates != first {
		t.Errorf("second run wrote %d extra updates", store.updates-first)
	}
}

func TestRunFatalOnExhaustedCollisions(t *testing.T) {
	store := &memStore{videos: map[string]string{"v1": ""}, probeAlwaysHit: true}

	_, err := New(store).Run(context.Background())
	if err == nil {
		t.Fatal("Run() should fail when collision retries are exhausted")
	}
}

func TestRunCountsUpdateFailures(t *testing.T) {
	store := &memStore{
		videos:    map[string]string{"v1": "", "v2": ""},
		updateErr: errors.New("update rejected"),
	}

	stats, err := New(store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if stats.Failed != 2 || stats.Success != 0 {
		t.Errorf("stats = %+v, want 2 failures", stats)
	}
}
