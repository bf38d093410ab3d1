package token

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key under which the authenticated user id
// is stored.
const UserIDKey = "auth_user_id"

// Middleware extracts and validates the Bearer token, storing the subject
// in the request context. Requests without a valid token get a 401.
func Middleware(mgr *Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrMissingToken.Error())
			}

			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == header {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header must use the Bearer scheme")
			}

			claims, err := mgr.Validate(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error())
			}

			c.Set(UserIDKey, claims.UserID)
			return next(c)
		}
	}
}

// RequireOwnUser rejects requests whose :userId path or query parameter
// does not match the authenticated user.
func RequireOwnUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			pathUser := c.Param("userId")
			if pathUser == "" {
				pathUser = c.QueryParam("userId")
			}
			authUser, _ := c.Get(UserIDKey).(string)
			if pathUser != "" && authUser != "" && pathUser != authUser {
				return echo.NewHTTPError(http.StatusForbidden, "cannot act on another user's records")
			}
			return next(c)
		}
	}
}
