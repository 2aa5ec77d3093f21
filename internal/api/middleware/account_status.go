package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// ActiveAccount rejects requests whose token carries anything other than an
// active account status. Suspended and deactivated accounts keep valid
// tokens until expiry, so the gate has to check on every request.
func ActiveAccount() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			status, _ := c.Get("accountStatus").(string)
			if status != string(domain.StatusActive) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "account is not active"})
			}
			return next(c)
		}
	}
}
