package ports

import (
	"context"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

// ActivityRepository is the append-only audit store.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	ListRecent(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error)
	ListByActor(ctx context.Context, actorID int64, limit, offset int) ([]domain.ActivityLog, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.ActivityLog, error)
}
