// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event categories
const (
	CategoryDecision = "decision" // approval and rejection verdicts
	CategoryAdmin    = "admin"    // destructive administrative actions
)

// Decision event types
const (
	EventNGOApproved       = "ngo_approved"
	EventNGORejected       = "ngo_rejected"
	EventVolunteerApproved = "volunteer_approved"
	EventVolunteerRejected = "volunteer_rejected"
)

// Admin event types
const (
	EventNGODeleted     = "ngo_deleted"
	EventProjectDeleted = "project_deleted"
)

// Event is one recorded audit entry.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`

	Category  string `bson:"category" json:"category"`
	EventType string `bson:"event_type" json:"eventType"`

	// ActorID performed the action; TargetID is the user or record it
	// was performed on.
	ActorID   primitive.ObjectID  `bson:"actor_id" json:"actorId"`
	ActorRole string              `bson:"actor_role" json:"actorRole"`
	TargetID  *primitive.ObjectID `bson:"target_id,omitempty" json:"targetId,omitempty"`

	IP string `bson:"ip,omitempty" json:"ip,omitempty"`

	Details map[string]string `bson:"details,omitempty" json:"details,omitempty"`
}

// QueryFilter narrows ListRecent.
type QueryFilter struct {
	Category  string
	EventType string
	ActorID   *primitive.ObjectID
	Limit     int64
}

// Store manages audit event records.
type Store struct {
	c *mongo.Collection
}

// New creates a new audit Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// Log persists one event. Timestamp is stamped here if the caller left
// it zero.
func (s *Store) Log(ctx context.Context, e Event) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	_, err := s.c.InsertOne(ctx, e)
	return err
}

const defaultListLimit = 100

// ListRecent returns matching events, newest first.
func (s *Store) ListRecent(ctx context.Context, f QueryFilter) ([]Event, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.EventType != "" {
		filter["event_type"] = f.EventType
	}
	if f.ActorID != nil {
		filter["actor_id"] = *f.ActorID
	}

	limit := f.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
