package listing

import (
	"context"
	"errors"
	"testing"

	"BE-HOTEL-ADMIN/app/storage"
)

func TestModalCreateFlow(t *testing.T) {
	c, _, _ := loadedController(t, seedItems)
	if c.Modal().Open() {
		t.Fatalf("expected modal closed initially")
	}
	if err := c.OpenCreate(item{Qty: 1}); err != nil {
		t.Fatalf("OpenCreate: %v", err)
	}
	if err := c.OpenCreate(item{}); !errors.Is(err, ErrModalOpen) {
		t.Fatalf("expected ErrModalOpen, got %v", err)
	}
	if err := c.OpenEdit(1); !errors.Is(err, ErrModalOpen) {
		t.Fatalf("expected ErrModalOpen for edit, got %v", err)
	}

	if _, err := c.Submit(context.Background(), item{Qty: 1}); err == nil {
		t.Fatalf("expected validation error")
	}
	m := c.Modal()
	if m.Mode != Creating || !m.Errors.Has("name") {
		t.Fatalf("expected modal open with name error, got %+v", m)
	}

	rec, err := c.Submit(context.Background(), item{Name: "gamma", Qty: 1})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.ID != 3 || c.Modal().Open() {
		t.Fatalf("expected id 3 and closed modal, got %+v %v", rec, c.Modal().Mode)
	}
}

func TestModalEditFlow(t *testing.T) {
	c, b, _ := loadedController(t, seedItems)
	if err := c.OpenEdit(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := c.OpenEdit(2); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	if m := c.Modal(); m.Mode != Editing || m.Record.Name != "beta" {
		t.Fatalf("expected edit form on beta, got %+v", m)
	}

	b.failWrite = true
	if _, err := c.Submit(context.Background(), item{Name: "bravo"}); err == nil {
		t.Fatalf("expected write error")
	}
	if m := c.Modal(); m.Mode != Editing || m.Record.ID != 2 || len(m.Errors) != 0 {
		t.Fatalf("expected form kept open on record 2, got %+v", m)
	}

	b.failWrite = false
	rec, err := c.Submit(context.Background(), item{Name: "bravo"})
	if err != nil || rec.ID != 2 || rec.Name != "bravo" {
		t.Fatalf("Submit: got %+v (%v)", rec, err)
	}
	if c.Modal().Open() {
		t.Fatalf("expected modal closed after submit")
	}
}

func TestModalCancelAndClosedSubmit(t *testing.T) {
	c, _, _ := loadedController(t, seedItems)
	if _, err := c.Submit(context.Background(), item{Name: "x"}); !errors.Is(err, ErrModalClosed) {
		t.Fatalf("expected ErrModalClosed, got %v", err)
	}
	_ = c.OpenCreate(item{})
	c.Cancel()
	if c.Modal().Mode != Closed {
		t.Fatalf("expected closed modal after cancel")
	}
	if c.Len() != 2 {
		t.Fatalf("expected cancel to leave list untouched")
	}
}

func TestSnapshotBackendRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := NewSnapshot[item](store, "items")
	b := NewSnapshotBackend(snap, func(i item) int { return i.ID })
	c := New(Options[item]{Schema: itemSchema(), Backend: b, Cache: snap, Seed: seedItems, Logger: quietLogger()})

	if origin, _ := c.Load(context.Background()); origin != OriginSeed {
		t.Fatalf("expected seed on empty slot, got %v", origin)
	}
	if _, err := c.Create(context.Background(), item{Name: "gamma"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	listed, err := b.List(context.Background())
	if err != nil || len(listed) != 3 {
		t.Fatalf("expected 3 records written synchronously, got %v (%v)", listed, err)
	}
	if _, err := b.Update(context.Background(), 42, item{ID: 42}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := c.Remove(context.Background(), 1, func(item) bool { return true }); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	_ = c.Close()

	reloaded := New(Options[item]{Schema: itemSchema(), Backend: b, Cache: snap, Logger: quietLogger()})
	if origin, _ := reloaded.Load(context.Background()); origin != OriginBackend || reloaded.Len() != 2 {
		t.Fatalf("expected 2 records from slot, got %v from %v", reloaded.All(), origin)
	}
}
