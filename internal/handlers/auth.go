package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"

	"github.com/tulisaja/tulisaja/internal/auth"
	"github.com/tulisaja/tulisaja/internal/session"
	"github.com/tulisaja/tulisaja/storage"
	"github.com/tulisaja/tulisaja/storage/db"
)

// AuthHandler handles signup, login, logout, and the current-user endpoint
type AuthHandler struct {
	store    *storage.Storage
	sessions *session.Manager
}

func NewAuthHandler(store *storage.Storage, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{store: store, sessions: sessions}
}

type SignupRequest struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	BusinessName string `json:"business_name"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type UserResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	FullName     string     `json:"full_name"`
	BusinessName string     `json:"business_name,omitempty"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (h *AuthHandler) HandleSignup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))
	fullName := strings.TrimSpace(req.FullName)

	if email == "" || !strings.Contains(email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "Valid email is required")
	}
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username is required")
	}
	if fullName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Full name is required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.store.Queries.CreateUser(c.Request().Context(), db.CreateUserParams{
		ID:           ulid.Make().String(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		BusinessName: sql.NullString{String: strings.TrimSpace(req.BusinessName), Valid: strings.TrimSpace(req.BusinessName) != ""},
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return echo.NewHTTPError(http.StatusConflict, "Email or username already registered")
		}
		slog.Error("failed to create user", "error", err, "email", email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create account")
	}

	if err := h.createSession(c, &user); err != nil {
		slog.Error("failed to create session after signup", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	slog.Info("user signed up", "user_id", user.ID, "username", user.Username)

	return c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))
	if identifier == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Identifier and password are required")
	}

	var user db.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = h.store.Queries.GetUserByEmail(c.Request().Context(), identifier)
	} else {
		user, err = h.store.Queries.GetUserByUsername(c.Request().Context(), identifier)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		slog.Error("failed to load user for login", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	if err := h.store.Queries.UpdateUserLastLogin(c.Request().Context(), user.ID); err != nil {
		slog.Warn("failed to update last login", "error", err, "user_id", user.ID)
	}

	if err := h.createSession(c, &user); err != nil {
		slog.Error("failed to create session after login", "error", err, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)

	return c.JSON(http.StatusOK, userToResponse(user))
}

func (h *AuthHandler) HandleLogout(c echo.Context) error {
	if err := h.sessions.DestroySession(c); err != nil {
		slog.Warn("failed to destroy session", "error", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) HandleMe(c echo.Context) error {
	user, ok := auth.GetDBUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *AuthHandler) createSession(c echo.Context, user *db.User) error {
	return h.sessions.CreateSession(c, &session.UserData{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FullName:     user.FullName,
		BusinessName: user.BusinessName.String,
		IsAdmin:      user.IsAdmin,
	})
}

func userToResponse(u db.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
	if u.BusinessName.Valid {
		resp.BusinessName = u.BusinessName.String
	}
	if u.LastLoginAt.Valid {
		resp.LastLoginAt = &u.LastLoginAt.Time
	}
	return resp
}
