package ports

import (
	"context"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

// ActivityEntry describes an action to record. The service assigns the ID
// and timestamp.
type ActivityEntry struct {
	ActorID    *int64
	EntityType domain.EntityType
	EntityID   string
	Action     domain.ActivityAction
	Details    string
	IPAddress  string
}

// ActivityService records and reads audit entries. Record never fails the
// caller: persistence errors are logged and swallowed.
type ActivityService interface {
	Record(ctx context.Context, entry ActivityEntry)
	Recent(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error)
	ForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.ActivityLog, error)
	ForEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.ActivityLog, error)
}
