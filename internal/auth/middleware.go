package auth

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tulisaja/tulisaja/internal/session"
	"github.com/tulisaja/tulisaja/storage"
)

// LoadUser resolves the session cookie to a database user on every
// request. Unauthenticated requests pass through; RequireAuth decides
// whether that is acceptable for a route.
func LoadUser(sessions *session.Manager, store *storage.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userData, err := sessions.GetSession(c)
			if err != nil || userData == nil {
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			dbUser, err := store.Queries.GetUser(c.Request().Context(), userData.ID)
			if err != nil {
				// Session points at a user that no longer exists.
				slog.Warn("session user not found, destroying session", "user_id", userData.ID, "error", err)
				_ = sessions.DestroySession(c)
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			c.Set(DBUserKey, &dbUser)
			c.Set(IsAuthenticatedKey, true)
			return next(c)
		}
	}
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAuthenticated(c) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects unauthenticated requests with 401 and
// authenticated non-admins with 403.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAuthenticated(c) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			dbUser, ok := GetDBUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}
			if !dbUser.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}
