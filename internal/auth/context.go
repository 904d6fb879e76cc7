package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/tulisaja/tulisaja/storage/db"
)

// Context keys for auth data set by LoadUser.
const (
	DBUserKey          = "db_user"
	IsAuthenticatedKey = "is_authenticated"
)

// GetDBUser retrieves the database user from the Echo context.
func GetDBUser(c echo.Context) (*db.User, bool) {
	dbUser, ok := c.Get(DBUserKey).(*db.User)
	return dbUser, ok && dbUser != nil
}

// IsAuthenticated checks if the current request carries a valid session.
func IsAuthenticated(c echo.Context) bool {
	isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
	return isAuth
}

// IsAdmin checks if the current request's user is an administrator.
func IsAdmin(c echo.Context) bool {
	dbUser, ok := GetDBUser(c)
	return ok && dbUser.IsAdmin
}

// DisplayName prefers the business name over the personal name.
func DisplayName(u *db.User) string {
	if u == nil {
		return ""
	}
	if u.BusinessName.Valid && u.BusinessName.String != "" {
		return u.BusinessName.String
	}
	return u.FullName
}
