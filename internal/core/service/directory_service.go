package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/photoclub/membership-system/internal/core/domain"
	"github.com/photoclub/membership-system/internal/core/ports"
)

// DirectoryService implements the admin directory: account search and
// admin-flag mutation.
type DirectoryService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewDirectoryService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{users: users, sessions: sessions, log: log}
}

// Search returns (nil, nil) for a nil query so the caller can tell "no
// search performed yet" apart from an empty result set.
func (s *DirectoryService) Search(ctx context.Context, query *string, limit int64) ([]domain.UserSummary, error) {
	if query == nil {
		return nil, nil
	}

	results, err := s.users.Search(ctx, *query, limit)
	if err != nil {
		return nil, fmt.Errorf("directory search: %w", err)
	}
	return results, nil
}

func (s *DirectoryService) GrantAdmin(ctx context.Context, id domain.UserID) error {
	matched, err := s.users.SetAdmin(ctx, id, true)
	if err != nil {
		return fmt.Errorf("grant admin: %w", err)
	}
	s.log.Info().Str("user_id", id.String()).Int64("matched", matched).Msg("admin granted")
	return nil
}

// RevokeAdmin clears the target's admin flag. A missing target matches
// zero documents and is not an error. When the actor revokes their own
// admin status their session is destroyed too, so the demotion is visible
// on their very next request instead of lingering until logout.
func (s *DirectoryService) RevokeAdmin(ctx context.Context, id domain.UserID, actor *domain.Session) error {
	matched, err := s.users.SetAdmin(ctx, id, false)
	if err != nil {
		return fmt.Errorf("revoke admin: %w", err)
	}
	s.log.Info().Str("user_id", id.String()).Int64("matched", matched).Msg("admin revoked")

	if actor != nil && actor.UserID == id {
		if err := s.sessions.Delete(ctx, actor.ID); err != nil {
			s.log.Error().Err(err).Str("session_id", actor.ID).Msg("self-revoke: session destroy failed")
		}
	}
	return nil
}
