package helpers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// GetUserIDFromContext returns the authenticated principal id set by the JWT
// middleware. Every resource read and write is scoped by this id; it is never
// derived from request bodies.
func GetUserIDFromContext(c echo.Context) (int64, error) {
	id, ok := GetUserIDRaw(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid user context")
	}
	return id, nil
}

func GetUserEmailFromContext(c echo.Context) (string, error) {
	s, ok := GetUserEmailRaw(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid user email context")
	}
	return s, nil
}

func GetJWTTokenFromContext(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "empty token")
	}
	return token, nil
}
