package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stayops/hotel-management-api/internal/core/domain/hotel"
	"github.com/stayops/hotel-management-api/internal/infrastructure/httpserver/helpers"
)

func (s *Server) listHotels(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	hotels, err := s.hotelService.ListHotels(c.Request().Context(), ownerID)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusOK, hotels)
}

func (s *Server) createHotel(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req hotel.CreateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.hotelService.CreateHotel(c.Request().Context(), ownerID, &req)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateHotel(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel ID")
	}

	var req hotel.UpdateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.hotelService.UpdateHotel(c.Request().Context(), ownerID, id, &req)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteHotel(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel ID")
	}

	if err := s.hotelService.DeleteHotel(c.Request().Context(), ownerID, id); err != nil {
		return resourceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
