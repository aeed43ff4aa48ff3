package handler

import (
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

// getUserIDFromContext reads the id AuthJWT stored on the request.
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	userID, ok := v.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
