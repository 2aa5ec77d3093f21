package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the subject claim injected by the Auth middleware. An
// empty value means the middleware did not run or the token carried no
// subject; either way the request cannot be attributed to an account.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("userID").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
