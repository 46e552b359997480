package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayops/hotel-management-api/internal/core/ports"
)

// resourceError maps service errors onto HTTP status codes. Cache faults
// never reach here; only NotFound, Forbidden and persistence faults do.
func resourceError(err error) error {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, ports.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
