// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification type values.
const (
	NotifyApproval  = "APPROVAL"
	NotifyRejection = "REJECTION"
	NotifyEmail     = "EMAIL"
	NotifyOther     = "OTHER"
)

// ValidNotificationType reports whether t is a recognized notification type.
func ValidNotificationType(t string) bool {
	return t == NotifyApproval || t == NotifyRejection || t == NotifyEmail || t == NotifyOther
}

// Notification is an in-app message for one user. Delivery beyond the
// notifications collection (email, push) is out of scope; the dispatcher
// only guarantees the document is written.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Type      string             `bson:"type" json:"type"` // APPROVAL | REJECTION | EMAIL | OTHER
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// NotificationPrefs holds a user's delivery preferences. Exactly one document
// per user; absent means all channels enabled.
type NotificationPrefs struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	InApp     bool               `bson:"in_app" json:"inApp"`
	Email     bool               `bson:"email" json:"email"`
	Push      bool               `bson:"push" json:"push"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// DefaultNotificationPrefs returns the prefs used when a user has never
// saved any: everything on.
func DefaultNotificationPrefs(userID primitive.ObjectID) NotificationPrefs {
	return NotificationPrefs{UserID: userID, InApp: true, Email: true, Push: true}
}
