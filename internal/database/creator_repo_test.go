package database

import (
	"context"
	"errors"
	"testing"
)

func TestCreatorGetByID(t *testing.T) {
	fake := &fakeRest{rows: map[string]string{
		"/Creator": `[{"id":"c1","name":"foodiesam","image_url":"https://cdn/img.jpg"}]`,
	}}
	repo := NewCreatorRepository(newTestClient(t, fake))

	creator, err := repo.GetByID(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if creator.Name != "foodiesam" {
		t.Errorf("name = %q, want foodiesam", creator.Name)
	}

	if got := fake.requests[0].URL.Query().Get("id"); got != "eq.c1" {
		t.Errorf("id filter = %q, want eq.c1", got)
	}
}

func TestPlaceGetByID(t *testing.T) {
	fake := &fakeRest{rows: map[string]string{
		"/Places": `[{"id":"p1","name":"Taco Town","address":"1 Main St","city":"Toronto","rating":4.5}]`,
	}}
	repo := NewPlaceRepository(newTestClient(t, fake))

	place, err := repo.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if place.Name != "Taco Town" || place.City != "Toronto" {
		t.Errorf("unexpected place: %+v", place)
	}
}

func TestPlaceGetByIDNotFound(t *testing.T) {
	fake := &fakeRest{rows: map[string]string{}}
	repo := NewPlaceRepository(newTestClient(t, fake))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
