package ports

import (
	"context"

	"github.com/photoclub/membership-system/internal/core/domain"
)

// UserRepository defines the interface for credential store persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.UserAccount) (*domain.UserAccount, error)
	FindByUsername(ctx context.Context, username string) (*domain.UserAccount, error)
	FindByID(ctx context.Context, id domain.UserID) (*domain.UserAccount, error)

	// Search returns accounts whose username contains query
	// (case-insensitive). An empty query matches every account.
	// A limit <= 0 means unlimited. Ordering is store-defined.
	Search(ctx context.Context, query string, limit int64) ([]domain.UserSummary, error)

	// SetAdmin updates the admin flag and reports how many documents
	// matched. A missing target matches zero documents and is not an error.
	SetAdmin(ctx context.Context, id domain.UserID, isAdmin bool) (int64, error)
}
