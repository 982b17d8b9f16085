package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/middleware"
	"BE-HOTEL-ADMIN/app/usecases"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves login, registration and the password flows.
type AuthHandler struct {
	authUsecase usecases.AuthUsecase
}

func NewAuthHandler(authUsecase usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func setTokenHeaders(c echo.Context, pair entities.TokenPair) {
	c.Response().Header().Set("Authorization", "Bearer "+pair.AccessToken)
	c.Response().Header().Set("Refresh-Token", "Bearer "+pair.RefreshToken)
	c.Response().Header().Set("id", strconv.Itoa(pair.ID))
}

// Login godoc
// @Summary Login with username or email
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body entities.Login true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req entities.Login
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	pair, err := h.authUsecase.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	setTokenHeaders(c, pair)
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Login successful",
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"id":           pair.ID,
	})
}

// RegisterUser godoc
// @Summary Register a staff account
// @Description Password needs an uppercase letter, a lowercase letter, a number and a symbol.
// @Tags Auth
// @Accept json
// @Produce json
// @Param register body entities.Register true "Account"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Router /register [post]
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var req entities.Register
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	account, err := h.authUsecase.Register(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully", "data": account})
}

// Refresh godoc
// @Summary Exchange a refresh token for a new pair
// @Description The token comes from the body or the Refresh-Token header.
// @Tags Auth
// @Accept json
// @Produce json
// @Param refresh body entities.RefreshRequest false "Refresh token"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req entities.RefreshRequest
	_ = c.Bind(&req)
	token := req.RefreshToken
	if token == "" {
		token = strings.TrimPrefix(c.Request().Header.Get("Refresh-Token"), "Bearer ")
	}
	if token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "refresh token is required"})
	}
	pair, err := h.authUsecase.Refresh(token)
	if err != nil {
		return respondError(c, err)
	}
	setTokenHeaders(c, pair)
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "token refreshed",
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"id":           pair.ID,
	})
}

// Me godoc
// @Summary Current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id := middleware.ExtractTokenUserID(c)
	if id == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	account, err := h.authUsecase.Me(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": account})
}

// ChangePassword godoc
// @Summary Change the current account's password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body entities.ChangePassword true "Passwords"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /password/change [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	id := middleware.ExtractTokenUserID(c)
	if id == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req entities.ChangePassword
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	// the usecase validates so a wrong old password lands in the same errors list
	if err := h.authUsecase.ChangePassword(id, req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
}

// PasswordReset godoc
// @Summary Request a password reset link
// @Tags Auth
// @Accept json
// @Produce json
// @Param reset body entities.ResetRequest true "Email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /password/reset_request [post]
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req entities.ResetRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	resetToken, err := h.authUsecase.PasswordReset(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reset link sent", "token": resetToken})
}

// PasswordResetId godoc
// @Summary Set a new password with a reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param reset body entities.PasswordConfirmReset true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /password/reset/{token} [put]
func (h *AuthHandler) PasswordResetId(c echo.Context) error {
	token := c.Param("token")
	var req entities.PasswordConfirmReset
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	if err := h.authUsecase.PasswordResetId(token, req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset successfully"})
}
