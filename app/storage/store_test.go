package storage

import (
	"context"
	"errors"
	"testing"
)

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx, "rooms"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty slot: expected ErrNotFound, got %v", err)
	}
	if err := s.Save(ctx, "rooms", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}
	if err := s.Save(ctx, "rooms", []byte(`[{"id":1},{"id":2}]`)); err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}
	got, err := s.Load(ctx, "rooms")
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if string(got) != `[{"id":1},{"id":2}]` {
		t.Fatalf("Load: expected last snapshot, got %s", got)
	}
	if _, err := s.Load(ctx, "users"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load other slot: expected ErrNotFound, got %v", err)
	}
	if err := s.Save(ctx, "../etc", []byte(`[]`)); err == nil {
		t.Fatalf("Save: expected error for invalid slot name")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	testStore(t, m)
	if m.Saves("rooms") != 2 {
		t.Fatalf("expected 2 saves, got %d", m.Saves("rooms"))
	}
}

func TestFileStore(t *testing.T) {
	f, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	testStore(t, f)
}
