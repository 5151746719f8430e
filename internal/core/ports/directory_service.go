package ports

import (
	"context"

	"github.com/photoclub/membership-system/internal/core/domain"
)

// DirectoryService exposes the admin directory: search over the credential
// store and mutation of the admin flag.
type DirectoryService interface {
	// Search filters accounts by case-insensitive substring match on the
	// username. A nil query means no search was performed and yields
	// (nil, nil), distinct from an empty result. limit <= 0 is unlimited.
	Search(ctx context.Context, query *string, limit int64) ([]domain.UserSummary, error)

	GrantAdmin(ctx context.Context, id domain.UserID) error

	// RevokeAdmin clears the target's admin flag. When actor revokes their
	// own id the actor's session is destroyed as well, so the next request
	// observes the demotion immediately.
	RevokeAdmin(ctx context.Context, id domain.UserID, actor *domain.Session) error
}
