package auth

import (
	"database/sql"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"

	"github.com/tulisaja/tulisaja/storage/db"
)

func TestGetDBUser_Found(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:       ulid.Make().String(),
		Email:    "test@example.com",
		Username: "warungtest",
		FullName: "Pemilik Warung",
	}
	c.Set(DBUserKey, testUser)

	user, ok := GetDBUser(c)

	assert.True(t, ok, "Should find user in context")
	assert.NotNil(t, user)
	assert.Equal(t, testUser.ID, user.ID)
	assert.Equal(t, testUser.Email, user.Email)
}

func TestGetDBUser_NotFound(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	user, ok := GetDBUser(c)

	assert.False(t, ok, "Should not find user in context")
	assert.Nil(t, user)
}

func TestGetDBUser_WrongType(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	c.Set(DBUserKey, "not a user")

	user, ok := GetDBUser(c)

	assert.False(t, ok, "Should not cast wrong type")
	assert.Nil(t, user)
}

func TestIsAuthenticated_True(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	c.Set(IsAuthenticatedKey, true)

	assert.True(t, IsAuthenticated(c))
}

func TestIsAuthenticated_False(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	assert.False(t, IsAuthenticated(c))
}

func TestIsAdmin_True(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:      ulid.Make().String(),
		Email:   "admin@example.com",
		IsAdmin: true,
	}
	c.Set(DBUserKey, testUser)

	assert.True(t, IsAdmin(c))
}

func TestIsAdmin_False_NotAdmin(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:      ulid.Make().String(),
		Email:   "user@example.com",
		IsAdmin: false,
	}
	c.Set(DBUserKey, testUser)

	assert.False(t, IsAdmin(c))
}

func TestIsAdmin_False_NoUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	assert.False(t, IsAdmin(c))
}

func TestDisplayName(t *testing.T) {
	withBusiness := &db.User{
		FullName:     "Siti Rahma",
		BusinessName: sql.NullString{String: "Warung Bu Siti", Valid: true},
	}
	assert.Equal(t, "Warung Bu Siti", DisplayName(withBusiness))

	withoutBusiness := &db.User{FullName: "Siti Rahma"}
	assert.Equal(t, "Siti Rahma", DisplayName(withoutBusiness))

	assert.Equal(t, "", DisplayName(nil))
}
