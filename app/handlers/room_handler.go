package handlers

import (
	"net/http"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/usecases"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	roomUsecase usecases.RoomUsecase
}

func NewRoomHandler(roomUsecase usecases.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

// GetRooms godoc
// @Summary Get a list of rooms
// @Description Search, sort and paginate rooms. Without page and pageSize every match is returned.
// @Tags Room
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches id, name, capacity, category, price or status"
// @Param sort query string false "id, name, capacity, category, price or status"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/rooms [get]
func (h *RoomHandler) GetRooms(c echo.Context) error {
	page, err := h.roomUsecase.GetAll(parseQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return listResponse(c, page)
}

// GetRoomByID godoc
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) GetRoomByID(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}
	room, err := h.roomUsecase.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": room})
}

// CreateRoom godoc
// @Summary Create a new room
// @Description Category is one of kelas, labolatorium, perpustakaan, auditorium, lainnya. Status defaults to available.
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room body entities.RoomRequest true "Room details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req entities.RoomRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	room, err := h.roomUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "room created successfully", "data": room})
}

// UpdateRoom godoc
// @Summary Update a room by ID
// @Description Fields left empty keep their stored value.
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param room body entities.RoomRequest true "Room details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}
	var req entities.RoomRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	room, err := h.roomUsecase.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room updated successfully", "data": room})
}

// DeleteRoom godoc
// @Summary Delete a room by ID
// @Tags Room
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}
	if err := h.roomUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "delete room success"})
}

// ApproveRoom godoc
// @Summary Approve a room
// @Tags Room
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/rooms/{id}/approve [post]
func (h *RoomHandler) ApproveRoom(c echo.Context) error {
	return h.setStatus(c, h.roomUsecase.Approve, "room approved")
}

// RejectRoom godoc
// @Summary Reject a room
// @Tags Room
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/rooms/{id}/reject [post]
func (h *RoomHandler) RejectRoom(c echo.Context) error {
	return h.setStatus(c, h.roomUsecase.Reject, "room rejected")
}

func (h *RoomHandler) setStatus(c echo.Context, fn func(int) (entities.Room, error), message string) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}
	room, err := fn(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message, "data": room})
}
