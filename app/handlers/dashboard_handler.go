package handlers

import (
	"net/http"

	"BE-HOTEL-ADMIN/app/usecases"
	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboardUsecase usecases.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetDashboard godoc
// @Summary Dashboard totals
// @Description Rooms, users, bookings and revenue for bookings dated in [startDate, endDate], plus today's occupancy.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {object} entities.DashboardResponse
// @Failure 400 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	startDate := c.QueryParam("startDate")
	endDate := c.QueryParam("endDate")

	response, err := h.dashboardUsecase.GetDashboard(startDate, endDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
