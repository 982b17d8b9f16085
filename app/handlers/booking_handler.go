package handlers

import (
	"net/http"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/usecases"
	"github.com/labstack/echo/v4"
)

// BookingHandler serves /api/transactions, also mounted as /api/bookings.
type BookingHandler struct {
	bookingUsecase usecases.BookingUsecase
}

func NewBookingHandler(bookingUsecase usecases.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// GetTransactions godoc
// @Summary Get a list of transactions
// @Description Search matches resolved room and user names. Sort by id, room, roomId, bookingDate, bookedBy or price.
// @Tags Transaction
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search text"
// @Param sort query string false "Sort field"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /api/transactions [get]
func (h *BookingHandler) GetTransactions(c echo.Context) error {
	page, err := h.bookingUsecase.GetAll(parseQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return listResponse(c, page)
}

// GetTransactionByID godoc
// @Summary Get a transaction by ID
// @Tags Transaction
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [get]
func (h *BookingHandler) GetTransactionByID(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid transaction id"})
	}
	booking, err := h.bookingUsecase.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": booking})
}

// CreateTransaction godoc
// @Summary Book a room
// @Description The room and user must exist, the date must not be in the past and the room must be free that day. Price is copied from the room.
// @Tags Transaction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body entities.BookingRequest true "Booking"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/transactions [post]
func (h *BookingHandler) CreateTransaction(c echo.Context) error {
	var req entities.BookingRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	booking, err := h.bookingUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "transaction created successfully", "data": booking})
}

// UpdateTransaction godoc
// @Summary Update a transaction by ID
// @Tags Transaction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param transaction body entities.BookingRequest true "Booking"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [put]
func (h *BookingHandler) UpdateTransaction(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid transaction id"})
	}
	var req entities.BookingRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	booking, err := h.bookingUsecase.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "transaction updated successfully", "data": booking})
}

// DeleteTransaction godoc
// @Summary Delete a transaction by ID
// @Tags Transaction
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [delete]
func (h *BookingHandler) DeleteTransaction(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid transaction id"})
	}
	if err := h.bookingUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "delete transaction success"})
}
