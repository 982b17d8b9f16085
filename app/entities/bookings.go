package entities

import (
	"time"

	"BE-HOTEL-ADMIN/app/validation"
)

// DateLayout is the booking date format.
const DateLayout = "2006-01-02"

// Booking is a transaction: a room booked by a user on one date.
// Price is copied from the room when the booking is written.
type Booking struct {
	ID          int     `json:"id"`
	RoomID      int     `json:"roomId" validate:"required,gt=0"`
	BookingDate string  `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	BookedBy    int     `json:"bookedBy" validate:"required,gt=0"`
	Price       float64 `json:"price"`
}

type BookingRequest struct {
	RoomID      int    `json:"roomId"`
	BookingDate string `json:"bookingDate"`
	BookedBy    int    `json:"bookedBy"`
}

func (r BookingRequest) ToBooking() Booking {
	return Booking{RoomID: r.RoomID, BookingDate: r.BookingDate, BookedBy: r.BookedBy}
}

func (r BookingRequest) MergeInto(old Booking) Booking {
	b := old
	if r.RoomID != 0 {
		b.RoomID = r.RoomID
	}
	if r.BookingDate != "" {
		b.BookingDate = r.BookingDate
	}
	if r.BookedBy != 0 {
		b.BookedBy = r.BookedBy
	}
	return b
}

// BookingRefs is what a booking is validated against.
type BookingRefs struct {
	Rooms    []Room
	Users    []User
	Bookings []Booking
	Today    time.Time
}

// PriceBooking copies the current price of the booked room.
func PriceBooking(b Booking, rooms []Room) Booking {
	if room, ok := FindRoom(rooms, b.RoomID); ok {
		b.Price = room.Price
	}
	return b
}

// ValidateBooking checks required fields, referenced room and user, that the date is not
// before today, and that no other booking holds the same room on the same date.
func ValidateBooking(b Booking, refs BookingRefs) validation.Errors {
	errs := validation.Struct(b)

	if b.RoomID > 0 {
		if _, ok := FindRoom(refs.Rooms, b.RoomID); !ok {
			errs = errs.Add("roomId", "room not found")
		}
	}
	if b.BookedBy > 0 {
		if _, ok := FindUser(refs.Users, b.BookedBy); !ok {
			errs = errs.Add("bookedBy", "user not found")
		}
	}

	date, err := time.Parse(DateLayout, b.BookingDate)
	if err != nil {
		return errs
	}
	if date.Before(StartOfDay(refs.Today)) {
		errs = errs.Add("bookingDate", "booking date cannot be in the past")
	}
	for _, other := range refs.Bookings {
		if other.ID != b.ID && other.RoomID == b.RoomID && other.BookingDate == b.BookingDate {
			errs = errs.Add("bookingDate", "room is already booked on this date")
			break
		}
	}
	return errs
}

// StartOfDay returns midnight UTC of t's calendar date, comparable with parsed booking dates.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SampleBookings() []Booking {
	return []Booking{
		{ID: 1, RoomID: 1, BookingDate: "2023-10-01", BookedBy: 1, Price: 1500000},
		{ID: 2, RoomID: 2, BookingDate: "2023-10-02", BookedBy: 2, Price: 2500000},
	}
}
