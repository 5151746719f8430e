package ports

import (
	"context"

	"github.com/photoclub/membership-system/internal/core/domain"
)

// SessionStore persists authenticated sessions keyed by session id.
// Records expire server-side; Get on an expired or unknown id returns
// (nil, nil), which callers treat as anonymous.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
