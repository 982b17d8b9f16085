package entities

import (
	"strings"

	"BE-HOTEL-ADMIN/app/validation"
)

// Room categories
const (
	CategoryKelas        = "kelas"
	CategoryLaboratorium = "labolatorium"
	CategoryPerpustakaan = "perpustakaan"
	CategoryAuditorium   = "auditorium"
	CategoryLainnya      = "lainnya"
)

// Room statuses
const (
	RoomAvailable = "available"
	RoomApproved  = "approved"
	RoomRejected  = "rejected"
)

// Request body untuk endpoint rooms
type RoomRequest struct {
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// Response struct untuk rooms
type Room struct {
	ID       int     `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Capacity int     `json:"capacity" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required,oneof=kelas labolatorium perpustakaan auditorium lainnya"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Status   string  `json:"status" validate:"omitempty,oneof=available approved rejected"`
}

// ToRoom converts a request body into a room record without an id.
func (r RoomRequest) ToRoom() Room {
	return Room{Name: r.Name, Capacity: r.Capacity, Category: r.Category, Price: r.Price, Status: r.Status}
}

// MergeInto fills the zero fields of the request from old, the way PUT accepts partial payloads.
func (r RoomRequest) MergeInto(old Room) Room {
	room := old
	if r.Name != "" {
		room.Name = r.Name
	}
	if r.Capacity != 0 {
		room.Capacity = r.Capacity
	}
	if r.Category != "" {
		room.Category = r.Category
	}
	if r.Price != 0 {
		room.Price = r.Price
	}
	if r.Status != "" {
		room.Status = r.Status
	}
	return room
}

// NormalizeRoom trims the name, lower-cases enumerations, maps the "lab" alias and
// defaults an empty status to available.
func NormalizeRoom(room Room) Room {
	room.Name = strings.TrimSpace(room.Name)
	room.Category = strings.ToLower(strings.TrimSpace(room.Category))
	if room.Category == "lab" || room.Category == "laboratorium" {
		room.Category = CategoryLaboratorium
	}
	room.Status = strings.ToLower(strings.TrimSpace(room.Status))
	if room.Status == "" {
		room.Status = RoomAvailable
	}
	return room
}

// ValidateRoom checks required fields and enumerations.
func ValidateRoom(room Room) validation.Errors {
	return validation.Struct(room)
}

// SampleRooms is the built-in dataset used when nothing else can be loaded.
func SampleRooms() []Room {
	return []Room{
		{ID: 1, Name: "201", Capacity: 40, Category: CategoryKelas, Price: 1500000, Status: RoomAvailable},
		{ID: 2, Name: "202", Capacity: 25, Category: CategoryLaboratorium, Price: 2500000, Status: RoomAvailable},
	}
}

// FindRoom returns the room with id.
func FindRoom(rooms []Room, id int) (Room, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}
