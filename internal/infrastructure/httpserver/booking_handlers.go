package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stayops/hotel-management-api/internal/core/domain/booking"
	"github.com/stayops/hotel-management-api/internal/infrastructure/httpserver/helpers"
)

func (s *Server) listBookings(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	bookings, err := s.bookingService.ListBookings(c.Request().Context(), ownerID)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (s *Server) createBooking(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req booking.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.bookingService.CreateBooking(c.Request().Context(), ownerID, &req)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateBooking(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking ID")
	}

	var req booking.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.bookingService.UpdateBooking(c.Request().Context(), ownerID, id, &req)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteBooking(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking ID")
	}

	if err := s.bookingService.DeleteBooking(c.Request().Context(), ownerID, id); err != nil {
		return resourceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
