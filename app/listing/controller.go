// Package listing is the list-management engine behind every admin table: one
// Controller per entity type owns the records, the search/sort/page state and the
// create/edit form, and writes through a pluggable Backend.
package listing

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"BE-HOTEL-ADMIN/app/storage"
	"BE-HOTEL-ADMIN/app/validation"
)

// Origin tells where Load got its records from.
type Origin string

const (
	OriginBackend Origin = "backend"
	OriginCache   Origin = "cache"
	OriginSeed    Origin = "seed"
)

type Options[T any] struct {
	Schema  Schema[T]
	Backend Backend[T]
	// Cache is the last-known-good snapshot. It is written synchronously after a
	// successful load or seeding, and debounced after mutations.
	Cache    *Snapshot[T]
	Seed     []T
	Debounce time.Duration
	Logger   *log.Logger
}

type Controller[T any] struct {
	mu      sync.Mutex
	schema  Schema[T]
	backend Backend[T]
	cache   *Snapshot[T]
	seed    []T
	logger  *log.Logger
	writer  *debouncer

	records   []T
	search    string
	sortField string
	direction Direction
	page      int
	modal     Modal[T]
	writeErr  error
}

func New[T any](opts Options[T]) *Controller[T] {
	c := &Controller[T]{
		schema:    opts.Schema,
		backend:   opts.Backend,
		cache:     opts.Cache,
		seed:      slices.Clone(opts.Seed),
		logger:    opts.Logger,
		records:   []T{},
		direction: Asc,
		page:      1,
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	delay := opts.Debounce
	if delay <= 0 {
		delay = DefaultDebounce
	}
	c.writer = newDebouncer(delay, c.persist)
	return c
}

func (c *Controller[T]) Schema() Schema[T] {
	return c.schema
}

// Load fills the list from the backend, then the cached snapshot, then the seed.
// The list is never left empty because of a failure; only a cancelled context errors.
func (c *Controller[T]) Load(ctx context.Context) (Origin, error) {
	slot := c.schema.Slot

	var err error
	if c.backend == nil {
		err = ErrNoBackend
	} else {
		var records []T
		records, err = c.backend.List(ctx)
		if err == nil {
			c.replace(records)
			if c.cache != nil {
				if err := c.cache.Save(ctx, records); err != nil {
					c.logger.Printf("[WARN] %s: save snapshot after load: %v", slot, err)
				}
			}
			return OriginBackend, nil
		}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	c.logger.Printf("[WARN] %s: load from backend failed, using fallback: %v", slot, err)

	if c.cache != nil {
		cached, err := c.cache.Load(ctx)
		if err == nil {
			c.replace(cached)
			return OriginCache, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Printf("[WARN] %s: cached snapshot unusable: %v", slot, err)
		}
	}

	seed := slices.Clone(c.seed)
	c.replace(seed)
	if c.cache != nil {
		if err := c.cache.Save(ctx, seed); err != nil {
			c.logger.Printf("[ERROR] %s: persist sample data: %v", slot, err)
		}
	}
	return OriginSeed, nil
}

func (c *Controller[T]) replace(records []T) {
	if records == nil {
		records = []T{}
	}
	c.mu.Lock()
	c.records = slices.Clone(records)
	c.mu.Unlock()
}

// ==========================================
// STATE & DERIVED VIEWS
// ==========================================

// SetSearch stores the query and goes back to the first page.
func (c *Controller[T]) SetSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = query
	c.page = 1
}

func (c *Controller[T]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// SetSort toggles the direction when field is already selected, otherwise selects it ascending.
func (c *Controller[T]) SetSort(field string) error {
	if _, ok := c.schema.Fields[field]; !ok {
		return ErrUnknownField
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sortField == field {
		if c.direction == Asc {
			c.direction = Desc
		} else {
			c.direction = Asc
		}
		return nil
	}
	c.sortField = field
	c.direction = Asc
	return nil
}

func (c *Controller[T]) Sorting() (string, Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortField, c.direction
}

// SetPage moves to page n, clamped into [1, max(1, PageCount())].
func (c *Controller[T]) SetPage(n int) {
	total := len(c.Filtered())
	last := max(1, PageCount(total, c.schema.pageSize()))
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = min(max(n, 1), last)
}

// Page is the current page, clamped if records went away since it was set.
func (c *Controller[T]) Page() int {
	return c.View().Page
}

func (c *Controller[T]) query() ([]T, Query) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.records), Query{
		Search:    c.search,
		SortField: c.sortField,
		Direction: c.direction,
		Page:      c.page,
		PageSize:  c.schema.pageSize(),
	}
}

// All returns a copy of the authoritative list in stored order.
func (c *Controller[T]) All() []T {
	records, _ := c.query()
	return records
}

func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

func (c *Controller[T]) Find(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexLocked(id); idx >= 0 {
		return c.records[idx], true
	}
	var zero T
	return zero, false
}

// Filtered returns the records matching the current search.
func (c *Controller[T]) Filtered() []T {
	records, q := c.query()
	return Filter(records, c.schema, q.Search)
}

// Sorted returns Filtered in the current sort order.
func (c *Controller[T]) Sorted() []T {
	records, q := c.query()
	return Sort(Filter(records, c.schema, q.Search), c.schema, q.SortField, q.Direction)
}

func (c *Controller[T]) Paginated() []T {
	return c.View().Data
}

func (c *Controller[T]) PageCount() int {
	return c.View().TotalPage
}

// View computes the current page envelope.
func (c *Controller[T]) View() Page[T] {
	records, q := c.query()
	total := len(Filter(records, c.schema, q.Search))
	q.Page = min(q.Page, max(1, PageCount(total, q.PageSize)))
	return Apply(records, c.schema, q)
}

// ==========================================
// MUTATIONS
// ==========================================

func (c *Controller[T]) indexLocked(id int) int {
	return slices.IndexFunc(c.records, func(r T) bool { return c.schema.ID(r) == id })
}

// Create validates input, assigns max+1 as id and writes it through the backend.
func (c *Controller[T]) Create(ctx context.Context, input T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createLocked(ctx, input)
}

func (c *Controller[T]) createLocked(ctx context.Context, input T) (T, error) {
	var zero T
	rec := c.schema.SetID(c.schema.prepare(input), 0)
	if errs := c.schema.validate(rec, c.records); len(errs) > 0 {
		return zero, errs
	}
	rec = c.schema.SetID(rec, NextID(c.records, c.schema.ID))
	if c.backend == nil {
		return zero, writeError(c.schema.Slot, ErrNoBackend)
	}

	saved, err := c.backend.Create(ctx, rec)
	if err != nil {
		return zero, writeError(c.schema.Slot, err)
	}
	if c.schema.ID(saved) <= 0 {
		saved = rec
	}
	c.records = append(slices.Clone(c.records), saved)
	c.scheduleWrite()
	return saved, nil
}

// Update replaces the record with id after the same validation as Create.
func (c *Controller[T]) Update(ctx context.Context, id int, input T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateLocked(ctx, id, input, true)
}

func (c *Controller[T]) updateLocked(ctx context.Context, id int, input T, check bool) (T, error) {
	var zero T
	idx := c.indexLocked(id)
	if idx < 0 {
		return zero, ErrNotFound
	}
	rec := input
	if check {
		rec = c.schema.SetID(c.schema.prepare(input), id)
		if errs := c.schema.validate(rec, c.records); len(errs) > 0 {
			return zero, errs
		}
	}

	if c.backend == nil {
		return zero, writeError(c.schema.Slot, ErrNoBackend)
	}
	saved, err := c.backend.Update(ctx, id, rec)
	if err != nil {
		return zero, writeError(c.schema.Slot, err)
	}
	if c.schema.ID(saved) != id {
		saved = rec
	}
	next := slices.Clone(c.records)
	next[idx] = saved
	c.records = next
	c.scheduleWrite()
	return saved, nil
}

// Patch applies fn to the record with id and writes the result without validation.
func (c *Controller[T]) Patch(ctx context.Context, id int, fn func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexLocked(id)
	if idx < 0 {
		var zero T
		return zero, ErrNotFound
	}
	rec := c.schema.SetID(fn(c.records[idx]), id)
	return c.updateLocked(ctx, id, rec, false)
}

// ConfirmFunc is asked before a record is removed; false cancels the removal.
type ConfirmFunc[T any] func(T) bool

// Remove deletes the record with id once confirm approves it. A nil confirm never approves.
func (c *Controller[T]) Remove(ctx context.Context, id int, confirm ConfirmFunc[T]) error {
	rec, ok := c.Find(id)
	if !ok {
		return ErrNotFound
	}
	if confirm == nil || !confirm(rec) {
		return ErrNotConfirmed
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	if c.backend == nil {
		return writeError(c.schema.Slot, ErrNoBackend)
	}
	if err := c.backend.Delete(ctx, id); err != nil {
		return writeError(c.schema.Slot, err)
	}
	c.records = slices.Delete(slices.Clone(c.records), idx, idx+1)
	c.scheduleWrite()
	return nil
}

// ==========================================
// SNAPSHOT WRITES
// ==========================================

func (c *Controller[T]) scheduleWrite() {
	if c.cache == nil {
		return
	}
	c.writer.trigger()
}

func (c *Controller[T]) persist() {
	if c.cache == nil {
		return
	}
	c.mu.Lock()
	records := slices.Clone(c.records)
	c.mu.Unlock()

	err := c.cache.Save(context.Background(), records)
	if err != nil {
		c.logger.Printf("[ERROR] %s: snapshot write failed: %v", c.schema.Slot, err)
	}
	c.mu.Lock()
	c.writeErr = err
	c.mu.Unlock()
}

// Flush writes a pending snapshot now and returns the result of the last write.
func (c *Controller[T]) Flush() error {
	c.writer.flush()
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.writeErr
	c.writeErr = nil
	return err
}

// Pending reports whether a snapshot write is waiting for the debounce delay.
func (c *Controller[T]) Pending() bool {
	return c.writer.pending()
}

// Close flushes pending writes.
func (c *Controller[T]) Close() error {
	return c.Flush()
}

// fieldErrors keeps validation errors for the form and nil for anything else.
func fieldErrors(err error) validation.Errors {
	errs, _ := validation.As(err)
	return errs
}
