package helpers

import "github.com/labstack/echo/v4"

type ctxKey string

const (
	keyUserID    ctxKey = "user_id"
	keyUserEmail ctxKey = "user_email"
)

func SetUserID(c echo.Context, id int64) { c.Set(string(keyUserID), id) }
func GetUserIDRaw(c echo.Context) (int64, bool) {
	v := c.Get(string(keyUserID))
	id, ok := v.(int64)
	return id, ok
}

func SetUserEmail(c echo.Context, email string) { c.Set(string(keyUserEmail), email) }
func GetUserEmailRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyUserEmail))
	s, ok := v.(string)
	return s, ok
}
