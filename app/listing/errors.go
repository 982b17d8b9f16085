package listing

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrNotConfirmed = errors.New("removal not confirmed")
	ErrUnknownField = errors.New("unknown sort field")
	ErrModalOpen    = errors.New("a form is already open")
	ErrModalClosed  = errors.New("no form is open")
	ErrNoBackend    = errors.New("no backend configured")
	// ErrUnauthorized is returned by backends when the session is no longer accepted.
	ErrUnauthorized = errors.New("unauthorized")
)

// Persistence operations
const (
	OpRead  = "read"
	OpWrite = "write"
)

// PersistenceError wraps a backend or snapshot failure.
type PersistenceError struct {
	Op   string
	Slot string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Slot, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func readError(slot string, err error) error {
	return &PersistenceError{Op: OpRead, Slot: slot, Err: err}
}

func writeError(slot string, err error) error {
	var pe *PersistenceError
	if errors.As(err, &pe) && pe.Op == OpWrite {
		return err
	}
	return &PersistenceError{Op: OpWrite, Slot: slot, Err: err}
}
