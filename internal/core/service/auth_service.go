package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/photoclub/membership-system/internal/core/domain"
	"github.com/photoclub/membership-system/internal/core/ports"
)

// usernamePattern is the credential rule shared by Register and Login:
// 1 to 24 alphanumeric characters, case-sensitive.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,24}$`)

const maxPasswordLen = 24

// AuthService implements registration, login and logout.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.UserAccount, error) {
	if !usernamePattern.MatchString(username) {
		return nil, domain.ErrValidation
	}
	if len(password) == 0 || len(password) > maxPasswordLen {
		return nil, domain.ErrValidation
	}

	// Check-then-insert is not atomic; the unique index on username is the
	// backstop that turns the losing insert into ErrUsernameTaken.
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register lookup: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.UserAccount{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("user_id", created.ID.String()).Msg("account created")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.UserAccount, *domain.Session, error) {
	// Only the username format is checked on login; the password rule is
	// enforced at registration and a stored password always satisfies it.
	if !usernamePattern.MatchString(username) {
		return nil, nil, domain.ErrValidation
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Absent user and wrong password are conflated externally.
			s.log.Debug().Str("username", username).Msg("login: user not found")
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("login lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("username", username).Msg("login: password mismatch")
		return nil, nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:            uuid.NewString(),
		Authenticated: true,
		Username:      user.Username,
		UserID:        user.ID,
		ExpiresAt:     time.Now().UTC().Add(domain.SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	return user, session, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		// Best effort: the cookie is cleared and the redirect happens
		// regardless, so the failure stays in the logs.
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("logout: session destroy failed")
	}
}
