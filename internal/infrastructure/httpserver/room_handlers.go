package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stayops/hotel-management-api/internal/core/domain/room"
	"github.com/stayops/hotel-management-api/internal/infrastructure/httpserver/helpers"
)

func (s *Server) listRooms(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	rooms, err := s.roomService.ListRooms(c.Request().Context(), ownerID)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (s *Server) createRoom(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req room.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.roomService.CreateRoom(c.Request().Context(), ownerID, &req)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateRoom(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room ID")
	}

	var req room.UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.roomService.UpdateRoom(c.Request().Context(), ownerID, id, &req)
	if err != nil {
		return resourceError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteRoom(c echo.Context) error {
	ownerID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room ID")
	}

	if err := s.roomService.DeleteRoom(c.Request().Context(), ownerID, id); err != nil {
		return resourceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
