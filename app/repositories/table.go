// Package repositories keeps the mock API's data in memory. Each table can mirror
// itself to a snapshot slot so a file or postgres store survives restarts; with the
// memory store everything resets on restart.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/storage"
)

var ErrNotFound = errors.New("record not found")

type table[T any] struct {
	mu    sync.RWMutex
	rows  []T
	id    func(T) int
	setID func(T, int) T
	snap  *listing.Snapshot[T]
}

// newTable loads the slot if it holds a snapshot, otherwise starts from seed and
// writes it. A nil store keeps the table in memory only.
func newTable[T any](store storage.Store, slot string, seed []T, id func(T) int, setID func(T, int) T) (*table[T], error) {
	t := &table[T]{id: id, setID: setID, rows: slices.Clone(seed)}
	if store == nil {
		return t, nil
	}
	t.snap = listing.NewSnapshot[T](store, slot)

	rows, err := t.snap.Load(context.Background())
	switch {
	case err == nil:
		t.rows = rows
	case errors.Is(err, storage.ErrNotFound):
		if err := t.snap.Save(context.Background(), t.rows); err != nil {
			return nil, fmt.Errorf("seed %s: %w", slot, err)
		}
	default:
		return nil, fmt.Errorf("load %s: %w", slot, err)
	}
	return t, nil
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.rows)
}

func (t *table[T]) get(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i := t.index(id); i >= 0 {
		return t.rows[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

func (t *table[T]) index(id int) int {
	return slices.IndexFunc(t.rows, func(r T) bool { return t.id(r) == id })
}

// insert stores rec under the next free id. check runs under the table lock against the
// current rows; a non-nil result aborts the insert.
func (t *table[T]) insert(rec T, check func(rows []T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	if check != nil {
		if err := check(t.rows); err != nil {
			return zero, err
		}
	}
	rec = t.setID(rec, listing.NextID(t.rows, t.id))
	next := append(slices.Clone(t.rows), rec)
	if err := t.save(next); err != nil {
		return zero, err
	}
	t.rows = next
	return rec, nil
}

// update replaces the row with id and reports the rows affected.
func (t *table[T]) update(id int, rec T, check func(rows []T) error) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(id)
	if i < 0 {
		return 0, nil
	}
	if check != nil {
		if err := check(t.rows); err != nil {
			return 0, err
		}
	}
	next := slices.Clone(t.rows)
	next[i] = t.setID(rec, id)
	if err := t.save(next); err != nil {
		return 0, err
	}
	t.rows = next
	return 1, nil
}

func (t *table[T]) delete(id int) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(id)
	if i < 0 {
		return 0, nil
	}
	next := slices.Delete(slices.Clone(t.rows), i, i+1)
	if err := t.save(next); err != nil {
		return 0, err
	}
	t.rows = next
	return 1, nil
}

func (t *table[T]) save(rows []T) error {
	if t.snap == nil {
		return nil
	}
	return t.snap.Save(context.Background(), rows)
}
