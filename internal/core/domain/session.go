package domain

import "time"

// SessionTTL is how long an authenticated session lives from login.
const SessionTTL = 24 * time.Hour

// Session is the server-side record behind a browser's session cookie.
// Only authenticated sessions are ever persisted; a browser with no valid
// cookie (or an expired record) is simply anonymous. The admin flag is
// deliberately absent: role is re-derived from the credential store on
// every admin-gated request, never trusted from the session.
type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username"`
	UserID        UserID    `json:"user_id"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Expired reports whether the session record is past its expiry.
// The session store's TTL normally discards expired records on its own;
// this is the in-process check for a record read just before eviction.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
