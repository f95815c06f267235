package notificationstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists per-user notifications and delivery preferences.
type Store struct {
	c     *mongo.Collection
	prefs *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("notifications"),
		prefs: db.Collection("notification_prefs"),
	}
}

var errBadType = errors.New(`type must be "APPROVAL"|"REJECTION"|"EMAIL"|"OTHER"`)

// Insert stores a notification for a user. Unread by default.
func (s *Store) Insert(ctx context.Context, n models.Notification) (models.Notification, error) {
	if !models.ValidNotificationType(n.Type) {
		return models.Notification{}, errBadType
	}
	n.ID = primitive.NewObjectID()
	n.Read = false
	n.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// ListByUser returns a user's notifications, newest first, capped at limit
// (0 means no cap).
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Notification
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountUnread counts a user's unread notifications.
func (s *Store) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
}

// MarkRead marks one notification read. The userID guard keeps users from
// touching each other's notifications; reports mongo.ErrNoDocuments when
// the (id, user) pair matches nothing.
func (s *Store) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkAllRead marks every unread notification of a user read and returns
// how many changed.
func (s *Store) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// GetPrefs loads a user's delivery preferences, falling back to the
// defaults (everything on) when none were saved yet.
func (s *Store) GetPrefs(ctx context.Context, userID primitive.ObjectID) (models.NotificationPrefs, error) {
	var p models.NotificationPrefs
	err := s.prefs.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.DefaultNotificationPrefs(userID), nil
		}
		return models.NotificationPrefs{}, err
	}
	return p, nil
}

// SetPrefs upserts a user's delivery preferences.
func (s *Store) SetPrefs(ctx context.Context, p models.NotificationPrefs) error {
	_, err := s.prefs.UpdateOne(ctx,
		bson.M{"user_id": p.UserID},
		bson.M{"$set": bson.M{
			"in_app":     p.InApp,
			"email":      p.Email,
			"push":       p.Push,
			"updated_at": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if wafflemongo.IsDup(err) {
		// Two first-time saves raced on the unique user index; the other
		// writer's upsert won and carries equivalent data.
		return nil
	}
	return err
}

// DeleteReadBefore removes read notifications created before cutoff.
// Unread notifications are kept regardless of age.
func (s *Store) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{
		"read":       true,
		"created_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
