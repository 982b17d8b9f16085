// Package catalog wires one shared list controller per entity. The booking controller
// resolves room and user names through the other two.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/remote"
	"BE-HOTEL-ADMIN/app/storage"
)

// Mode selects the backend every controller writes through.
type Mode string

const (
	// ModeLocal keeps each collection in its snapshot slot.
	ModeLocal Mode = "local"
	// ModeStatic lists from static JSON documents and keeps changes in the slots.
	ModeStatic Mode = "static"
	// ModeREST talks to the JSON API and caches the last good list in the slots.
	ModeREST Mode = "rest"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLocal, ModeStatic, ModeREST:
		return m, nil
	case "":
		return ModeLocal, nil
	}
	return "", fmt.Errorf("unknown backend %q (want local, static or rest)", s)
}

// Resource paths under /api for REST mode.
var resources = map[string]string{
	SlotRooms:    "rooms",
	SlotUsers:    "users",
	SlotBookings: "transactions",
}

type Options struct {
	Mode  Mode
	Store storage.Store
	// Remote carries base url, token and timeout for REST mode. Resource is set per entity.
	Remote remote.Options
	// Sources maps a slot to its static document in static mode. Slots without one stay local.
	Sources  map[string]string
	Debounce time.Duration
	PageSize int
	Now      func() time.Time
	Logger   *log.Logger
}

type Catalog struct {
	Rooms    *listing.Controller[entities.Room]
	Users    *listing.Controller[entities.User]
	Bookings *listing.Controller[entities.Booking]

	now func() time.Time
}

func New(opts Options) *Catalog {
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	if opts.Mode == "" {
		opts.Mode = ModeLocal
	}
	c := &Catalog{now: opts.Now}
	if c.now == nil {
		c.now = time.Now
	}

	c.Rooms = newController(opts, RoomSchema(opts.PageSize), entities.SampleRooms())
	c.Users = newController(opts, UserSchema(opts.PageSize), entities.SampleUsers())
	resolver := Resolver{
		Rooms: func() []entities.Room { return c.Rooms.All() },
		Users: func() []entities.User { return c.Users.All() },
		Now:   c.now,
	}
	c.Bookings = newController(opts, BookingSchema(opts.PageSize, resolver), entities.SampleBookings())
	return c
}

func newController[T any](opts Options, schema listing.Schema[T], seed []T) *listing.Controller[T] {
	cache := listing.NewSnapshot[T](opts.Store, schema.Slot)
	local := listing.NewCacheBackend(cache)

	var backend listing.Backend[T] = local
	switch opts.Mode {
	case ModeREST:
		ro := opts.Remote
		ro.Resource = resources[schema.Slot]
		backend = remote.NewRESTBackend[T](ro)
	case ModeStatic:
		if src := opts.Sources[schema.Slot]; src != "" {
			backend = remote.NewStaticBackend[T](src, opts.Remote.Timeout, local)
		}
	}

	return listing.New(listing.Options[T]{
		Schema:   schema,
		Backend:  backend,
		Cache:    cache,
		Seed:     seed,
		Debounce: opts.Debounce,
		Logger:   opts.Logger,
	})
}

// Origins reports where each collection was loaded from.
type Origins struct {
	Rooms    listing.Origin
	Users    listing.Origin
	Bookings listing.Origin
}

// Load fills rooms and users before bookings so booking joins resolve.
func (c *Catalog) Load(ctx context.Context) (Origins, error) {
	var (
		out Origins
		err error
	)
	if out.Rooms, err = c.Rooms.Load(ctx); err != nil {
		return out, err
	}
	if out.Users, err = c.Users.Load(ctx); err != nil {
		return out, err
	}
	if out.Bookings, err = c.Bookings.Load(ctx); err != nil {
		return out, err
	}
	return out, nil
}

const (
	UnknownRoom = "Unknown Room"
	UnknownUser = "Unknown User"
)

func (c *Catalog) RoomName(id int) string {
	if r, ok := c.Rooms.Find(id); ok {
		return r.Name
	}
	return UnknownRoom
}

func (c *Catalog) UserName(id int) string {
	if u, ok := c.Users.Find(id); ok {
		return u.Name
	}
	return UnknownUser
}

// Approve marks the room approved whatever its current status.
func (c *Catalog) Approve(ctx context.Context, id int) (entities.Room, error) {
	return c.setStatus(ctx, id, entities.RoomApproved)
}

// Reject marks the room rejected whatever its current status.
func (c *Catalog) Reject(ctx context.Context, id int) (entities.Room, error) {
	return c.setStatus(ctx, id, entities.RoomRejected)
}

func (c *Catalog) setStatus(ctx context.Context, id int, status string) (entities.Room, error) {
	return c.Rooms.Patch(ctx, id, func(r entities.Room) entities.Room {
		r.Status = status
		return r
	})
}

// Flush forces every pending snapshot write.
func (c *Catalog) Flush() error {
	return errors.Join(c.Rooms.Flush(), c.Users.Flush(), c.Bookings.Flush())
}

func (c *Catalog) Close() error {
	return c.Flush()
}
