package repositories

import (
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/storage"
)

type RoomRepository interface {
	GetAll() ([]entities.Room, error)
	GetByID(id int) (entities.Room, error)
	Create(room entities.Room) (entities.Room, error)
	Update(id int, room entities.Room) (int64, error)
	Delete(id int) (int64, error)
	CheckRoomExists(id int) (bool, error)
}

type roomRepository struct {
	rooms *table[entities.Room]
}

func NewRoomRepository(store storage.Store) (RoomRepository, error) {
	t, err := newTable(store, "api_rooms", entities.SampleRooms(),
		func(r entities.Room) int { return r.ID },
		func(r entities.Room, id int) entities.Room { r.ID = id; return r })
	if err != nil {
		return nil, err
	}
	return &roomRepository{rooms: t}, nil
}

func (r *roomRepository) GetAll() ([]entities.Room, error) {
	return r.rooms.all(), nil
}

func (r *roomRepository) GetByID(id int) (entities.Room, error) {
	return r.rooms.get(id)
}

func (r *roomRepository) Create(room entities.Room) (entities.Room, error) {
	return r.rooms.insert(room, nil)
}

func (r *roomRepository) Update(id int, room entities.Room) (int64, error) {
	return r.rooms.update(id, room, nil)
}

func (r *roomRepository) Delete(id int) (int64, error) {
	return r.rooms.delete(id)
}

func (r *roomRepository) CheckRoomExists(id int) (bool, error) {
	_, err := r.rooms.get(id)
	return err == nil, nil
}
