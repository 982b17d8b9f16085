package usecases

import (
	"errors"
	"time"

	"BE-HOTEL-ADMIN/app/catalog"
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/repositories"
)

// BookingUsecase serves the transactions endpoints. Prices are always taken from the
// booked room, whatever the client sent.
type BookingUsecase interface {
	GetAll(q listing.Query) (listing.Page[entities.Booking], error)
	GetByID(id int) (entities.Booking, error)
	Create(req entities.BookingRequest) (entities.Booking, error)
	Update(id int, req entities.BookingRequest) (entities.Booking, error)
	Delete(id int) error
}

type bookingUsecase struct {
	bookingRepo repositories.BookingRepository
	schema      listing.Schema[entities.Booking]
}

func NewBookingUsecase(bookingRepo repositories.BookingRepository, roomRepo repositories.RoomRepository, userRepo repositories.UserRepository, now func() time.Time) BookingUsecase {
	resolver := catalog.Resolver{
		Rooms: func() []entities.Room {
			rooms, _ := roomRepo.GetAll()
			return rooms
		},
		Users: func() []entities.User {
			users, _ := userRepo.GetAll()
			return users
		},
		Now: now,
	}
	return &bookingUsecase{bookingRepo: bookingRepo, schema: catalog.BookingSchema(0, resolver)}
}

func (u *bookingUsecase) GetAll(q listing.Query) (listing.Page[entities.Booking], error) {
	bookings, err := u.bookingRepo.GetAll()
	if err != nil {
		return listing.Page[entities.Booking]{}, internal()
	}
	return paginate(bookings, u.schema, q)
}

func (u *bookingUsecase) GetByID(id int) (entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(id)
	if err != nil {
		return booking, lookupError(err, "transaction not found")
	}
	return booking, nil
}

// check validates b against the bookings the repository holds at write time.
func (u *bookingUsecase) check(b entities.Booking) repositories.CheckFunc {
	return func(current []entities.Booking) error {
		if errs := u.schema.Validate(b, current); len(errs) > 0 {
			return invalid(errs)
		}
		return nil
	}
}

func (u *bookingUsecase) Create(req entities.BookingRequest) (entities.Booking, error) {
	booking := u.schema.Prepare(req.ToBooking())
	created, err := u.bookingRepo.Create(booking, u.check(booking))
	if err != nil {
		return entities.Booking{}, passthrough(err)
	}
	return created, nil
}

func (u *bookingUsecase) Update(id int, req entities.BookingRequest) (entities.Booking, error) {
	old, err := u.GetByID(id)
	if err != nil {
		return old, err
	}
	booking := u.schema.Prepare(req.MergeInto(old))
	rowsAffected, err := u.bookingRepo.Update(id, booking, u.check(booking))
	if err != nil {
		return entities.Booking{}, passthrough(err)
	}
	if rowsAffected == 0 {
		return entities.Booking{}, notFound("transaction not found")
	}
	return booking, nil
}

func (u *bookingUsecase) Delete(id int) error {
	rowsAffected, err := u.bookingRepo.Delete(id)
	if err != nil {
		return internal()
	}
	if rowsAffected == 0 {
		return notFound("transaction not found")
	}
	return nil
}

// passthrough keeps a use case error raised inside a repository callback.
func passthrough(err error) error {
	var ue *UseCaseError
	if errors.As(err, &ue) {
		return ue
	}
	return internal()
}
