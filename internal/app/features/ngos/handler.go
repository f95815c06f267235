package ngos

import (
	ngoprofilestore "github.com/volunhub/volunhub/internal/app/store/ngoprofiles"
	projectstore "github.com/volunhub/volunhub/internal/app/store/projects"
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/auditlog"
	"github.com/volunhub/volunhub/internal/app/system/notify"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all NGO directory and profile handlers.
type Handler struct {
	Users    *userstore.Store
	Profiles *ngoprofilestore.Store
	Projects *projectstore.Store
	Notify   *notify.Dispatcher
	Audit    *auditlog.Logger // nil disables audit recording
	Log      *zap.Logger
}

// NewHandler constructs an NGO Handler.
func NewHandler(db *mongo.Database, dispatcher *notify.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Profiles: ngoprofilestore.New(db),
		Projects: projectstore.New(db),
		Notify:   dispatcher,
		Log:      logger,
	}
}
