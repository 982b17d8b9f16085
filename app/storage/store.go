// Package storage keeps named JSON snapshot slots ("rooms", "users", "bookings", ...).
// Every save overwrites the whole slot.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned by Load when a slot has never been written.
var ErrNotFound = errors.New("storage: slot not found")

type Store interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, data []byte) error
}

var slotPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func checkSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return fmt.Errorf("storage: invalid slot name %q", slot)
	}
	return nil
}
