package repositories

import (
	"time"

	"BE-HOTEL-ADMIN/app/entities"
)

type DashboardRepository interface {
	GetTotalUsers() (int, error)
	GetRooms() ([]entities.Room, error)
	// GetBookings returns bookings dated within [start, end].
	GetBookings(start, end time.Time) ([]entities.Booking, error)
}

type dashboardRepository struct {
	rooms    RoomRepository
	users    UserRepository
	bookings BookingRepository
}

func NewDashboardRepository(rooms RoomRepository, users UserRepository, bookings BookingRepository) DashboardRepository {
	return &dashboardRepository{rooms: rooms, users: users, bookings: bookings}
}

func (r *dashboardRepository) GetTotalUsers() (int, error) {
	users, err := r.users.GetAll()
	return len(users), err
}

func (r *dashboardRepository) GetRooms() ([]entities.Room, error) {
	return r.rooms.GetAll()
}

func (r *dashboardRepository) GetBookings(start, end time.Time) ([]entities.Booking, error) {
	all, err := r.bookings.GetAll()
	if err != nil {
		return nil, err
	}
	var out []entities.Booking
	for _, b := range all {
		date, err := time.Parse(entities.DateLayout, b.BookingDate)
		if err != nil {
			continue
		}
		if !date.Before(start) && !date.After(end) {
			out = append(out, b)
		}
	}
	return out, nil
}
