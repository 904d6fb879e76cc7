package session

import (
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "tulisaja_session"
	userKey     = "user"
)

// Manager wraps the cookie store holding the signed-in user.
type Manager struct {
	store sessions.Store
}

// NewManager creates a session manager. secure must be true when serving
// over HTTPS so the cookie carries the Secure flag.
func NewManager(secret string, secure bool) *Manager {
	gob.Register(&UserData{})

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
	}
}

// CreateSession stores user in a fresh session cookie.
func (m *Manager) CreateSession(c echo.Context, user *UserData) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Values[userKey] = user

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves the user data from the session cookie.
func (m *Manager) GetSession(c echo.Context) (*UserData, error) {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	userData, ok := session.Values[userKey].(*UserData)
	if !ok || userData == nil {
		return nil, fmt.Errorf("no user data in session")
	}

	return userData, nil
}

// DestroySession expires the cookie and drops the user data.
func (m *Manager) DestroySession(c echo.Context) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Options.MaxAge = -1
	delete(session.Values, userKey)

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}
