package ports

import (
	"context"

	"github.com/photoclub/membership-system/internal/core/domain"
)

type AuthService interface {
	// Register creates an account with the admin flag off. Input that
	// fails validation never reaches the store.
	Register(ctx context.Context, username, password string) (*domain.UserAccount, error)

	// Login verifies credentials and, on success, establishes a new
	// authenticated session. The returned account carries the admin flag
	// read fresh from the store as a role hint for the post-login
	// redirect. Unknown user and wrong password are indistinguishable to
	// the caller.
	Login(ctx context.Context, username, password string) (*domain.UserAccount, *domain.Session, error)

	// Logout destroys the session record. Store failures are logged and
	// swallowed; the caller always proceeds as if it succeeded.
	Logout(ctx context.Context, sessionID string)
}
