package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"BE-HOTEL-ADMIN/app/storage"
)

// Backend is the persistence strategy a controller loads from and writes through.
// Create receives the record with the id the controller proposes; the returned record is
// what gets stored, so a backend may assign its own id.
type Backend[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id int, rec T) (T, error)
	Delete(ctx context.Context, id int) error
}

// Snapshot is a JSON array of records in one named storage slot.
type Snapshot[T any] struct {
	store storage.Store
	slot  string
}

func NewSnapshot[T any](store storage.Store, slot string) *Snapshot[T] {
	return &Snapshot[T]{store: store, slot: slot}
}

func (s *Snapshot[T]) Slot() string {
	return s.slot
}

// Load returns storage.ErrNotFound (wrapped) for a slot never written.
func (s *Snapshot[T]) Load(ctx context.Context) ([]T, error) {
	data, err := s.store.Load(ctx, s.slot)
	if err != nil {
		return nil, readError(s.slot, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, readError(s.slot, fmt.Errorf("decode snapshot: %w", err))
	}
	if records == nil {
		// "null" is not a snapshot
		return nil, readError(s.slot, errors.New("snapshot is not an array"))
	}
	return records, nil
}

// Save overwrites the slot with records.
func (s *Snapshot[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return writeError(s.slot, err)
	}
	if err := s.store.Save(ctx, s.slot, data); err != nil {
		return writeError(s.slot, err)
	}
	return nil
}

// SnapshotBackend persists the whole list to a slot on every mutation, the way
// the dashboard pages kept collections in local storage.
type SnapshotBackend[T any] struct {
	snap *Snapshot[T]
	id   func(T) int
}

func NewSnapshotBackend[T any](snap *Snapshot[T], id func(T) int) *SnapshotBackend[T] {
	return &SnapshotBackend[T]{snap: snap, id: id}
}

func (b *SnapshotBackend[T]) List(ctx context.Context) ([]T, error) {
	return b.snap.Load(ctx)
}

func (b *SnapshotBackend[T]) current(ctx context.Context) ([]T, error) {
	records, err := b.snap.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, nil
	}
	return records, err
}

func (b *SnapshotBackend[T]) Create(ctx context.Context, rec T) (T, error) {
	records, err := b.current(ctx)
	if err != nil {
		var zero T
		return zero, writeError(b.snap.slot, err)
	}
	if err := b.snap.Save(ctx, append(records, rec)); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (b *SnapshotBackend[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	var zero T
	records, err := b.current(ctx)
	if err != nil {
		return zero, writeError(b.snap.slot, err)
	}
	idx := slices.IndexFunc(records, func(r T) bool { return b.id(r) == id })
	if idx < 0 {
		return zero, ErrNotFound
	}
	records[idx] = rec
	if err := b.snap.Save(ctx, records); err != nil {
		return zero, err
	}
	return rec, nil
}

func (b *SnapshotBackend[T]) Delete(ctx context.Context, id int) error {
	records, err := b.current(ctx)
	if err != nil {
		return writeError(b.snap.slot, err)
	}
	idx := slices.IndexFunc(records, func(r T) bool { return b.id(r) == id })
	if idx < 0 {
		return ErrNotFound
	}
	return b.snap.Save(ctx, slices.Delete(records, idx, idx+1))
}

// CacheBackend lists from the controller's own cache slot and accepts mutations
// without touching storage. The controller's debounced snapshot write persists
// them, so a burst of changes costs one slot write.
type CacheBackend[T any] struct {
	snap *Snapshot[T]
}

func NewCacheBackend[T any](snap *Snapshot[T]) *CacheBackend[T] {
	return &CacheBackend[T]{snap: snap}
}

func (b *CacheBackend[T]) List(ctx context.Context) ([]T, error) {
	return b.snap.Load(ctx)
}

func (b *CacheBackend[T]) Create(ctx context.Context, rec T) (T, error) {
	return rec, ctx.Err()
}

func (b *CacheBackend[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	return rec, ctx.Err()
}

func (b *CacheBackend[T]) Delete(ctx context.Context, id int) error {
	return ctx.Err()
}
