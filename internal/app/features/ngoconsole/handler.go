package ngoconsole

import (
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/auditlog"
	"github.com/volunhub/volunhub/internal/app/system/notify"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the NGO volunteer-review console.
type Handler struct {
	Users  *userstore.Store
	Notify *notify.Dispatcher
	Audit  *auditlog.Logger // nil disables audit recording
	Log    *zap.Logger
}

// NewHandler constructs an NGO console Handler.
func NewHandler(db *mongo.Database, dispatcher *notify.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Notify: dispatcher,
		Log:    logger,
	}
}
