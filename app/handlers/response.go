package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/usecases"
	"BE-HOTEL-ADMIN/app/validation"
	"github.com/labstack/echo/v4"
)

// respondError writes a use case error with its status, and its field errors if any.
func respondError(c echo.Context, err error) error {
	var e *usecases.UseCaseError
	if errors.As(err, &e) {
		body := echo.Map{"message": e.Message}
		if len(e.Fields) > 0 {
			body["errors"] = e.Fields
		}
		return c.JSON(e.Code, body)
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
}

// bindValid binds the body into v and runs the echo validator on it. When it reports
// false the 400 response has been written and err is the result of writing it.
func bindValid(c echo.Context, v any) (bool, error) {
	if err := c.Bind(v); err != nil {
		return false, c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(v); err != nil {
		if errs, ok := validation.As(err); ok {
			return false, c.JSON(http.StatusBadRequest, echo.Map{"message": "validation failed", "errors": errs})
		}
		return false, c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	return true, nil
}

func parseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil && id > 0
}

// parseQuery reads search, sort, order, page and pageSize. Bad numbers count as absent.
func parseQuery(c echo.Context) listing.Query {
	q := listing.Query{
		Search:    c.QueryParam("search"),
		SortField: c.QueryParam("sort"),
		Direction: listing.ParseDirection(c.QueryParam("order")),
	}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		q.Page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && ps > 0 {
		q.PageSize = ps
	}
	return q
}

func listResponse[T any](c echo.Context, page listing.Page[T]) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"data":      page.Data,
		"page":      page.Page,
		"pageSize":  page.PageSize,
		"totalPage": page.TotalPage,
		"totalData": page.TotalData,
	})
}
