package session

import (
	"context"
	"time"

	"github.com/Tharusha999/isdn-sub001/internal/auth"
)

// Session holds exactly one authenticated Identity for the lifetime
// of a browser session. A session with an incomplete identity is
// invalid and must be treated as absent.
type Session struct {
	SessionID string        `json:"session_id"`
	Identity  auth.Identity `json:"identity"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Valid reports whether the session may be handed to a caller: a
// complete identity and an expiry still in the future.
func (s Session) Valid(now time.Time) bool {
	return s.SessionID != "" &&
		s.Identity.Complete() &&
		now.Before(s.ExpiresAt)
}

// Store defines how sessions are persisted and retrieved. Get returns
// (nil, nil) for absent, expired, or partially written sessions —
// callers never see a half-populated identity.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
