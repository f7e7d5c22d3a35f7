package user

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreCreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	created, err := store.Create(ctx, "a-pompom0107", "digest", true)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	byName, err := store.FindByUsername(ctx, "a-pompom0107")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if byName.ID != created.ID || !byName.IsAdmin || byName.PasswordHash != "digest" {
		t.Fatalf("unexpected user: %+v", byName)
	}

	byID, err := store.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if byID.Username != "a-pompom0107" {
		t.Fatalf("unexpected user: %+v", byID)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.FindByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.FindByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreUsernameConflict(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Create(ctx, "a-pompom0107", "digest1", false); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := store.Create(ctx, "a-pompom0107", "digest2", false); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}
