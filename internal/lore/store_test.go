package lore

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "lore.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenAndClose(t *testing.T) {
	store := openTestStore(t)

	if store.DB() == nil {
		t.Fatal("expected a live database handle")
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lore.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	if err := store.UpsertUser(42, "Swift"); err != nil {
		t.Fatalf("failed to upsert user: %v", err)
	}

	store.Close()

	// schema creation must be idempotent and leave existing rows alone
	store, err = Open(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer store.Close()

	profile, err := store.GetUserProfile(42)
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}

	if profile == nil || profile.Name != "Swift" {
		t.Errorf("expected user to survive reopen, got %+v", profile)
	}
}
