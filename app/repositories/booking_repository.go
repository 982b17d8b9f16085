package repositories

import (
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/storage"
)

// CheckFunc validates a write against the bookings stored at that moment.
type CheckFunc func(current []entities.Booking) error

type BookingRepository interface {
	GetAll() ([]entities.Booking, error)
	GetByID(id int) (entities.Booking, error)
	Create(booking entities.Booking, check CheckFunc) (entities.Booking, error)
	Update(id int, booking entities.Booking, check CheckFunc) (int64, error)
	Delete(id int) (int64, error)
}

type bookingRepository struct {
	bookings *table[entities.Booking]
}

func NewBookingRepository(store storage.Store) (BookingRepository, error) {
	t, err := newTable(store, "api_bookings", entities.SampleBookings(),
		func(b entities.Booking) int { return b.ID },
		func(b entities.Booking, id int) entities.Booking { b.ID = id; return b })
	if err != nil {
		return nil, err
	}
	return &bookingRepository{bookings: t}, nil
}

func (r *bookingRepository) GetAll() ([]entities.Booking, error) {
	return r.bookings.all(), nil
}

func (r *bookingRepository) GetByID(id int) (entities.Booking, error) {
	return r.bookings.get(id)
}

// Create runs check and the insert under one lock so two requests cannot book the
// same room and date.
func (r *bookingRepository) Create(booking entities.Booking, check CheckFunc) (entities.Booking, error) {
	return r.bookings.insert(booking, check)
}

func (r *bookingRepository) Update(id int, booking entities.Booking, check CheckFunc) (int64, error) {
	return r.bookings.update(id, booking, check)
}

func (r *bookingRepository) Delete(id int) (int64, error) {
	return r.bookings.delete(id)
}
