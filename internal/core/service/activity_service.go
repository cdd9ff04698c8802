package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// ActivityService records audit entries. Recording is best-effort: a
// failed insert is logged and never propagated, so audit trouble cannot
// fail the request that triggered it.
type ActivityService struct {
	activities ports.ActivityRepository
	logger     zerolog.Logger
}

func NewActivityService(activities ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{activities: activities, logger: logger}
}

func (s *ActivityService) Record(ctx context.Context, entry ports.ActivityEntry) {
	log := &domain.ActivityLog{
		ID:         uuid.NewString(),
		ActorID:    entry.ActorID,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Action:     entry.Action,
		Details:    entry.Details,
		IPAddress:  entry.IPAddress,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.activities.Insert(ctx, log); err != nil {
		s.logger.Error().Err(err).
			Str("action", string(entry.Action)).
			Str("entity_id", entry.EntityID).
			Msg("failed to record activity")
	}
}

func (s *ActivityService) Recent(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error) {
	return s.activities.ListRecent(ctx, clampLimit(limit), offset)
}

func (s *ActivityService) ForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.ActivityLog, error) {
	return s.activities.ListByActor(ctx, userID, clampLimit(limit), offset)
}

func (s *ActivityService) ForEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.ActivityLog, error) {
	return s.activities.ListByEntity(ctx, entityType, entityID, clampLimit(limit), offset)
}
