package handlers

import (
	"net/http"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/usecases"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the guest profiles behind /api/users.
type UserHandler struct {
	userUsecase usecases.UserUsecase
}

func NewUserHandler(userUsecase usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// GetUsers godoc
// @Summary Get a list of users
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches id, name or email"
// @Param sort query string false "id, name or email"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /api/users [get]
func (h *UserHandler) GetUsers(c echo.Context) error {
	page, err := h.userUsecase.GetAll(parseQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return listResponse(c, page)
}

// GetUserByID godoc
// @Summary Get a user by ID
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	user, err := h.userUsecase.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": user})
}

// CreateUser godoc
// @Summary Create a user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body entities.UserRequest true "User details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req entities.UserRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	user, err := h.userUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "user created successfully", "data": user})
}

// UpdateUserByID godoc
// @Summary Update a user by ID
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body entities.UserRequest true "User details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUserByID(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	var req entities.UserRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	user, err := h.userUsecase.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user updated successfully", "data": user})
}

// DeleteUser godoc
// @Summary Delete a user by ID
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	if err := h.userUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "delete user success"})
}
