package session

// UserData is the user information stored in the session cookie.
type UserData struct {
	ID           string
	Email        string
	Username     string
	FullName     string
	BusinessName string
	IsAdmin      bool
}
