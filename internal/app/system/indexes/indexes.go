// Package indexes declares the MongoDB indexes the application relies on.
// EnsureAll runs at startup (EnsureSchema hook) and is idempotent: CreateMany
// is a no-op for indexes that already exist with the same keys and options.
//
// The unique indexes are load-bearing, not advisory: email uniqueness on
// users and the one-profile-per-NGO rule on ngo_profiles are enforced here
// and surfaced to callers as duplicate errors by the stores.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates every index. Problems are aggregated so a single bad
// collection does not hide the rest; startup fails fast on any error.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	for _, c := range []struct {
		name   string
		models []mongo.IndexModel
	}{
		{"users", userIndexes()},
		{"ngo_profiles", ngoProfileIndexes()},
		{"projects", projectIndexes()},
		{"notifications", notificationIndexes()},
		{"notification_prefs", notificationPrefIndexes()},
		{"audit_events", auditEventIndexes()},
	} {
		if _, err := db.Collection(c.name).Indexes().CreateMany(ctx, c.models); err != nil {
			problems = append(problems, c.name+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			// Emails are stored lowercased, so a plain unique index gives
			// case-insensitive uniqueness.
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "approval_status", Value: 1}},
			Options: options.Index().SetName("role_approval"),
		},
		{
			// Volunteer lists on the NGO console filter by affiliation.
			Keys:    bson.D{{Key: "ngo_id", Value: 1}},
			Options: options.Index().SetName("ngo_affiliation").SetSparse(true),
		},
	}
}

func ngoProfileIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("uniq_user").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "registration_number", Value: 1}},
			Options: options.Index().SetName("uniq_regno").SetUnique(true),
		},
	}
}

func projectIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ngo_id", Value: 1}},
			Options: options.Index().SetName("owner"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status"),
		},
		{
			// Multikey index over the member set for "projects of volunteer X".
			Keys:    bson.D{{Key: "volunteers", Value: 1}},
			Options: options.Index().SetName("members"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("recency"),
		},
	}
}

func notificationIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("user_recency"),
		},
	}
}

func notificationPrefIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("uniq_user").SetUnique(true),
		},
	}
}

func auditEventIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("recency"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("category_recency"),
		},
	}
}
