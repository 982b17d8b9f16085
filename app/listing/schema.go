package listing

import (
	"strconv"

	"BE-HOTEL-ADMIN/app/validation"
)

// DefaultPageSize matches the five rows per page of the admin tables.
const DefaultPageSize = 5

// Field is a sortable column. Exactly one of Number or Text is set.
type Field[T any] struct {
	Number func(T) float64
	Text   func(T) string
}

func NumberField[T any](fn func(T) float64) Field[T] {
	return Field[T]{Number: fn}
}

func TextField[T any](fn func(T) string) Field[T] {
	return Field[T]{Text: fn}
}

// Schema describes how one entity type is listed, searched, sorted and validated.
type Schema[T any] struct {
	// Slot names the snapshot slot, e.g. "rooms".
	Slot  string
	ID    func(T) int
	SetID func(T, int) T
	// Search returns the text projections matched against the query. Relational
	// entities return resolved display names here, not foreign keys.
	Search func(T) []string
	Fields map[string]Field[T]
	// Prepare normalizes input before validation (trimming, derived fields). Optional.
	Prepare func(T) T
	// Validate checks a candidate against the current list. Optional.
	Validate func(candidate T, current []T) validation.Errors
	PageSize int
}

func (s Schema[T]) pageSize() int {
	if s.PageSize <= 0 {
		return DefaultPageSize
	}
	return s.PageSize
}

func (s Schema[T]) prepare(rec T) T {
	if s.Prepare == nil {
		return rec
	}
	return s.Prepare(rec)
}

func (s Schema[T]) validate(rec T, current []T) validation.Errors {
	if s.Validate == nil {
		return nil
	}
	return s.Validate(rec, current)
}

// NextID returns max(existing ids) + 1, or 1 for an empty list.
func NextID[T any](records []T, id func(T) int) int {
	next := 1
	for _, r := range records {
		if v := id(r); v >= next {
			next = v + 1
		}
	}
	return next
}

// Itoa and Ftoa format numbers the way they appear in search projections.
func Itoa(n int) string {
	return strconv.Itoa(n)
}

func Ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
