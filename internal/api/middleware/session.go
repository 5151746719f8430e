package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/photoclub/membership-system/internal/core/domain"
	"github.com/photoclub/membership-system/internal/core/ports"
)

// SessionCookieName is the browser cookie carrying the opaque session id.
const SessionCookieName = "member_session"

const sessionContextKey = "session"

// LoadSession resolves the session cookie to its server-side record and
// stashes it in the request context. A missing cookie, an unknown id or an
// expired record all read as anonymous; a session store transport failure
// propagates instead, so an outage is never mistaken for "logged out".
func LoadSession(store ports.SessionStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				log.Error().Err(err).Msg("session load failed")
				return err
			}
			if session != nil {
				c.Set(sessionContextKey, session)
			}
			return next(c)
		}
	}
}

// SessionFromContext returns the authenticated session, or nil when the
// request is anonymous.
func SessionFromContext(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionContextKey).(*domain.Session)
	return session
}

// RequireAuthenticated redirects anonymous requests to the login page.
// Terminal on failure: no downstream predicate or handler runs.
func RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := SessionFromContext(c)
		if session == nil || !session.Authenticated {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// RequireAdmin re-fetches the account behind the session and checks the
// admin flag at request time. The flag is never cached on the session, so
// a just-revoked admin is denied on their very next request rather than at
// next login. Only valid downstream of RequireAuthenticated. Fails closed
// with ErrNotAuthorized (rendered as an error page, not a redirect) when
// the account is gone or not an admin.
func RequireAdmin(users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			if session == nil || !session.Authenticated {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			user, err := users.FindByID(c.Request().Context(), session.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// Dangling session reference: account deleted
					// since login. Treat as not admin.
					return domain.ErrNotAuthorized
				}
				log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("admin re-check failed")
				return err
			}
			if !user.IsAdmin {
				return domain.ErrNotAuthorized
			}
			return next(c)
		}
	}
}
