package repository

import (
	"context"
	"errors"
	"time"

	"hairsalon/internal/wizard"
)

var ErrSessionNotFound = errors.New("wizard session not found or expired")

// SessionStore persists in-progress wizard sessions. A session belongs to one
// customer and lives for minutes, so stores are free to expire aggressively.
type SessionStore interface {
	Save(ctx context.Context, session *wizard.Session) error
	Get(ctx context.Context, sessionID string) (*wizard.Session, error)
	Delete(ctx context.Context, sessionID string) error
	// DeleteExpired removes sessions idle since before the given time and
	// returns how many were dropped. Stores with native TTL may be a no-op.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
