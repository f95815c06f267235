package notifications

import (
	notificationstore "github.com/volunhub/volunhub/internal/app/store/notifications"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the notification inbox handlers.
type Handler struct {
	Store *notificationstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a notifications Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: notificationstore.New(db),
		Log:   logger,
	}
}
