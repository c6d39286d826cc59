package repository

import (
	"context"
	"time"

	"clinic-management/internal/domain/entity"
)

// SessionRepository maps opaque session ids to authenticated identities.
// Find returns (nil, nil) for unknown or expired sessions.
type SessionRepository interface {
	Save(ctx context.Context, sessionID string, identity *entity.Identity, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*entity.Identity, error)
	Delete(ctx context.Context, sessionID string) error
}
