// Package apitoken guards write endpoints with the static publishing token.
package apitoken

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Require rejects requests whose Authorization header does not carry the
// configured bearer token. The response body matches the API error contract.
func Require(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			got, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || got != token {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			return next(c)
		}
	}
}
