package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

const activityCollection = "activity_logs"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
// Entries are append-only; nothing updates or deletes them.
type ActivityRepository struct {
	db *mongo.Database
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	doc := bson.M{
		"_id":         entry.ID,
		"entity_type": string(entry.EntityType),
		"entity_id":   entry.EntityID,
		"action":      string(entry.Action),
		"timestamp":   entry.Timestamp.UTC(),
	}
	if entry.ActorID != nil {
		doc["actor_id"] = *entry.ActorID
	}
	if entry.Details != "" {
		doc["details"] = entry.Details
	}
	if entry.IPAddress != "" {
		doc["ip_address"] = entry.IPAddress
	}

	if _, err := r.db.Collection(activityCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error) {
	return r.find(ctx, bson.M{}, limit, offset)
}

func (r *ActivityRepository) ListByActor(ctx context.Context, actorID int64, limit, offset int) ([]domain.ActivityLog, error) {
	return r.find(ctx, bson.M{"actor_id": actorID}, limit, offset)
}

func (r *ActivityRepository) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.ActivityLog, error) {
	filter := bson.M{
		"entity_type": string(entityType),
		"entity_id":   entityID,
	}
	return r.find(ctx, filter, limit, offset)
}

func (r *ActivityRepository) find(ctx context.Context, filter bson.M, limit, offset int) ([]domain.ActivityLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.db.Collection(activityCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []activityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}

	entries := make([]domain.ActivityLog, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.toDomain())
	}
	return entries, nil
}

type activityDoc struct {
	ID         string    `bson:"_id"`
	ActorID    *int64    `bson:"actor_id,omitempty"`
	EntityType string    `bson:"entity_type"`
	EntityID   string    `bson:"entity_id"`
	Action     string    `bson:"action"`
	Details    string    `bson:"details,omitempty"`
	IPAddress  string    `bson:"ip_address,omitempty"`
	Timestamp  time.Time `bson:"timestamp"`
}

func (d activityDoc) toDomain() domain.ActivityLog {
	return domain.ActivityLog{
		ID:         d.ID,
		ActorID:    d.ActorID,
		EntityType: domain.EntityType(d.EntityType),
		EntityID:   d.EntityID,
		Action:     domain.ActivityAction(d.Action),
		Details:    d.Details,
		IPAddress:  d.IPAddress,
		Timestamp:  d.Timestamp,
	}
}
