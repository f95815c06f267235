package projects

import (
	projectstore "github.com/volunhub/volunhub/internal/app/store/projects"
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/auditlog"
	"github.com/volunhub/volunhub/internal/app/system/notify"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all project handlers.
type Handler struct {
	Projects *projectstore.Store
	Users    *userstore.Store
	Notify   *notify.Dispatcher
	Audit    *auditlog.Logger // nil disables audit recording
	Log      *zap.Logger
}

// NewHandler constructs a projects Handler.
func NewHandler(db *mongo.Database, dispatcher *notify.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		Projects: projectstore.New(db),
		Users:    userstore.New(db),
		Notify:   dispatcher,
		Log:      logger,
	}
}
