package usecases

import (
	"BE-HOTEL-ADMIN/app/catalog"
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/repositories"
)

type RoomUsecase interface {
	GetAll(q listing.Query) (listing.Page[entities.Room], error)
	GetByID(id int) (entities.Room, error)
	Create(req entities.RoomRequest) (entities.Room, error)
	Update(id int, req entities.RoomRequest) (entities.Room, error)
	Delete(id int) error
	Approve(id int) (entities.Room, error)
	Reject(id int) (entities.Room, error)
}

type roomUsecase struct {
	roomRepo repositories.RoomRepository
	schema   listing.Schema[entities.Room]
}

func NewRoomUsecase(roomRepo repositories.RoomRepository) RoomUsecase {
	return &roomUsecase{roomRepo: roomRepo, schema: catalog.RoomSchema(0)}
}

func (u *roomUsecase) GetAll(q listing.Query) (listing.Page[entities.Room], error) {
	rooms, err := u.roomRepo.GetAll()
	if err != nil {
		return listing.Page[entities.Room]{}, internal()
	}
	return paginate(rooms, u.schema, q)
}

func (u *roomUsecase) GetByID(id int) (entities.Room, error) {
	room, err := u.roomRepo.GetByID(id)
	if err != nil {
		return room, lookupError(err, "room not found")
	}
	return room, nil
}

func (u *roomUsecase) Create(req entities.RoomRequest) (entities.Room, error) {
	room := u.schema.Prepare(req.ToRoom())
	if errs := u.schema.Validate(room, nil); len(errs) > 0 {
		return entities.Room{}, invalid(errs)
	}
	created, err := u.roomRepo.Create(room)
	if err != nil {
		return entities.Room{}, internal()
	}
	return created, nil
}

// Update merges a partial payload into the stored room before validating it.
func (u *roomUsecase) Update(id int, req entities.RoomRequest) (entities.Room, error) {
	old, err := u.GetByID(id)
	if err != nil {
		return old, err
	}
	room := u.schema.Prepare(req.MergeInto(old))
	if errs := u.schema.Validate(room, nil); len(errs) > 0 {
		return entities.Room{}, invalid(errs)
	}
	return room, u.write(id, room)
}

func (u *roomUsecase) write(id int, room entities.Room) error {
	rowsAffected, err := u.roomRepo.Update(id, room)
	if err != nil {
		return internal()
	}
	if rowsAffected == 0 {
		return notFound("room not found")
	}
	return nil
}

func (u *roomUsecase) Delete(id int) error {
	rowsAffected, err := u.roomRepo.Delete(id)
	if err != nil {
		return internal()
	}
	if rowsAffected == 0 {
		return notFound("room not found")
	}
	return nil
}

// Approve and Reject set the status from any current status.
func (u *roomUsecase) Approve(id int) (entities.Room, error) {
	return u.setStatus(id, entities.RoomApproved)
}

func (u *roomUsecase) Reject(id int) (entities.Room, error) {
	return u.setStatus(id, entities.RoomRejected)
}

func (u *roomUsecase) setStatus(id int, status string) (entities.Room, error) {
	room, err := u.GetByID(id)
	if err != nil {
		return room, err
	}
	room.Status = status
	return room, u.write(id, room)
}
