package repository

import (
	"context"

	"medicompare/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository persists flow sessions between requests.
// FindByID returns (nil, nil) when the session does not exist or has expired.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.FlowSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FlowSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
