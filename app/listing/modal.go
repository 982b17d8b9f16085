package listing

import (
	"context"

	"BE-HOTEL-ADMIN/app/validation"
)

type Mode int

const (
	Closed Mode = iota
	Creating
	Editing
)

func (m Mode) String() string {
	switch m {
	case Creating:
		return "create"
	case Editing:
		return "edit"
	default:
		return "closed"
	}
}

// Modal is the state of the create/edit form. Only one is open per controller.
type Modal[T any] struct {
	Mode   Mode
	Record T
	Errors validation.Errors
}

func (m Modal[T]) Open() bool {
	return m.Mode != Closed
}

func (c *Controller[T]) Modal() Modal[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

// OpenCreate opens an empty form prefilled with draft.
func (c *Controller[T]) OpenCreate(draft T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.modal.Open() {
		return ErrModalOpen
	}
	c.modal = Modal[T]{Mode: Creating, Record: draft}
	return nil
}

// OpenEdit opens the form on the record with id.
func (c *Controller[T]) OpenEdit(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.modal.Open() {
		return ErrModalOpen
	}
	idx := c.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	c.modal = Modal[T]{Mode: Editing, Record: c.records[idx]}
	return nil
}

func (c *Controller[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = Modal[T]{}
}

// Submit creates or updates from the open form. On any failure the form stays open
// with the submitted values; validation failures are also recorded on it.
func (c *Controller[T]) Submit(ctx context.Context, input T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		saved T
		err   error
	)
	switch c.modal.Mode {
	case Creating:
		saved, err = c.createLocked(ctx, input)
	case Editing:
		saved, err = c.updateLocked(ctx, c.schema.ID(c.modal.Record), input, true)
	default:
		return saved, ErrModalClosed
	}
	if err != nil {
		if c.modal.Mode == Editing {
			input = c.schema.SetID(input, c.schema.ID(c.modal.Record))
		}
		c.modal.Record = input
		c.modal.Errors = fieldErrors(err)
		return saved, err
	}
	c.modal = Modal[T]{}
	return saved, nil
}
