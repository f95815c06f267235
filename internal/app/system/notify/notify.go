// Package notify writes in-app notifications on behalf of features.
//
// Delivery is best effort: a failed insert is logged and swallowed so a
// notification problem never rolls back the decision that triggered it.
package notify

import (
	"context"

	notificationstore "github.com/volunhub/volunhub/internal/app/store/notifications"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Dispatcher struct {
	store  *notificationstore.Store
	logger *zap.Logger
}

func NewDispatcher(store *notificationstore.Store, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{store: store, logger: logger}
}

// Approval records an account-approval notification. Decision outcomes
// are always delivered regardless of the user's channel preferences.
func (d *Dispatcher) Approval(ctx context.Context, userID primitive.ObjectID, message string) {
	d.insert(ctx, userID, models.NotifyApproval, message)
}

// Rejection records an account-rejection notification, always delivered.
func (d *Dispatcher) Rejection(ctx context.Context, userID primitive.ObjectID, message string) {
	d.insert(ctx, userID, models.NotifyRejection, message)
}

// Info records a general notification, honoring the user's in-app
// preference.
func (d *Dispatcher) Info(ctx context.Context, userID primitive.ObjectID, message string) {
	prefs, err := d.store.GetPrefs(ctx, userID)
	if err != nil {
		d.logger.Error("notification prefs lookup failed",
			zap.String("user_id", userID.Hex()), zap.Error(err))
		return
	}
	if !prefs.InApp {
		return
	}
	d.insert(ctx, userID, models.NotifyOther, message)
}

func (d *Dispatcher) insert(ctx context.Context, userID primitive.ObjectID, typ, message string) {
	_, err := d.store.Insert(ctx, models.Notification{
		UserID:  userID,
		Type:    typ,
		Message: message,
	})
	if err != nil {
		d.logger.Error("notification insert failed",
			zap.String("user_id", userID.Hex()),
			zap.String("type", typ),
			zap.Error(err))
	}
}
