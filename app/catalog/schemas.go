package catalog

import (
	"strings"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/validation"
)

// Slot names of the three collections.
const (
	SlotRooms    = "rooms"
	SlotUsers    = "users"
	SlotBookings = "bookings"
)

func num[T any](fn func(T) float64) listing.Field[T] { return listing.NumberField(fn) }
func text[T any](fn func(T) string) listing.Field[T] { return listing.TextField(fn) }

func roomID(r entities.Room) int       { return r.ID }
func userID(u entities.User) int       { return u.ID }
func bookingID(b entities.Booking) int { return b.ID }

func RoomSchema(pageSize int) listing.Schema[entities.Room] {
	return listing.Schema[entities.Room]{
		Slot:  SlotRooms,
		ID:    roomID,
		SetID: func(r entities.Room, id int) entities.Room { r.ID = id; return r },
		Search: func(r entities.Room) []string {
			return []string{listing.Itoa(r.ID), r.Name, listing.Itoa(r.Capacity), r.Category, listing.Ftoa(r.Price), r.Status}
		},
		Fields: map[string]listing.Field[entities.Room]{
			"id":       num(func(r entities.Room) float64 { return float64(r.ID) }),
			"name":     text(func(r entities.Room) string { return r.Name }),
			"capacity": num(func(r entities.Room) float64 { return float64(r.Capacity) }),
			"category": text(func(r entities.Room) string { return r.Category }),
			"price":    num(func(r entities.Room) float64 { return r.Price }),
			"status":   text(func(r entities.Room) string { return r.Status }),
		},
		Prepare: entities.NormalizeRoom,
		Validate: func(r entities.Room, _ []entities.Room) validation.Errors {
			return entities.ValidateRoom(r)
		},
		PageSize: pageSize,
	}
}

func UserSchema(pageSize int) listing.Schema[entities.User] {
	return listing.Schema[entities.User]{
		Slot:  SlotUsers,
		ID:    userID,
		SetID: func(u entities.User, id int) entities.User { u.ID = id; return u },
		Search: func(u entities.User) []string {
			return []string{listing.Itoa(u.ID), u.Name, u.Email}
		},
		Fields: map[string]listing.Field[entities.User]{
			"id":    num(func(u entities.User) float64 { return float64(u.ID) }),
			"name":  text(func(u entities.User) string { return u.Name }),
			"email": text(func(u entities.User) string { return u.Email }),
		},
		Prepare: entities.NormalizeUser,
		Validate: func(u entities.User, _ []entities.User) validation.Errors {
			return entities.ValidateUser(u)
		},
		PageSize: pageSize,
	}
}

// Resolver looks up what bookings refer to. Search, sort, pricing and validation of
// bookings all go through it.
type Resolver struct {
	Rooms func() []entities.Room
	Users func() []entities.User
	Now   func() time.Time
}

func (r Resolver) RoomName(id int) string {
	if room, ok := entities.FindRoom(r.Rooms(), id); ok {
		return room.Name
	}
	return UnknownRoom
}

func (r Resolver) UserName(id int) string {
	if user, ok := entities.FindUser(r.Users(), id); ok {
		return user.Name
	}
	return UnknownUser
}

func (r Resolver) today() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func BookingSchema(pageSize int, r Resolver) listing.Schema[entities.Booking] {
	roomName := func(b entities.Booking) string { return r.RoomName(b.RoomID) }
	userName := func(b entities.Booking) string { return r.UserName(b.BookedBy) }

	return listing.Schema[entities.Booking]{
		Slot:  SlotBookings,
		ID:    bookingID,
		SetID: func(b entities.Booking, id int) entities.Booking { b.ID = id; return b },
		Search: func(b entities.Booking) []string {
			return []string{listing.Itoa(b.ID), roomName(b), b.BookingDate, userName(b), listing.Ftoa(b.Price)}
		},
		Fields: map[string]listing.Field[entities.Booking]{
			"id":          num(func(b entities.Booking) float64 { return float64(b.ID) }),
			"room":        text(roomName),
			"roomId":      num(func(b entities.Booking) float64 { return float64(b.RoomID) }),
			"bookingDate": text(func(b entities.Booking) string { return b.BookingDate }),
			"bookedBy":    text(userName),
			"price":       num(func(b entities.Booking) float64 { return b.Price }),
		},
		Prepare: func(b entities.Booking) entities.Booking {
			b.BookingDate = strings.TrimSpace(b.BookingDate)
			return entities.PriceBooking(b, r.Rooms())
		},
		Validate: func(b entities.Booking, current []entities.Booking) validation.Errors {
			return entities.ValidateBooking(b, entities.BookingRefs{
				Rooms:    r.Rooms(),
				Users:    r.Users(),
				Bookings: current,
				Today:    r.today(),
			})
		},
		PageSize: pageSize,
	}
}
