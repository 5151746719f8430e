package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrValidation = errors.New("invalid input")
var ErrUsernameTaken = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrNotAuthorized = errors.New("not authorized")

// UserID is the opaque identifier assigned by the credential store.
// Handlers never touch the store's native identifier type directly;
// ParseUserID is the single normalization point at the boundary.
type UserID string

// ParseUserID normalizes an identifier received over the wire. Malformed
// input fails closed as ErrUserNotFound so that a bad path parameter is
// indistinguishable from a missing account.
func ParseUserID(raw string) (UserID, error) {
	s := strings.TrimSpace(raw)
	if s == "" || len(s) > 64 {
		return "", ErrUserNotFound
	}
	return UserID(s), nil
}

func (id UserID) String() string { return string(id) }

// UserAccount models a registrant in the credential store.
type UserAccount struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the directory-search projection of an account.
// ID is always the string form, never the store's native identifier.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
