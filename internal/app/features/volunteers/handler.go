package volunteers

import (
	projectstore "github.com/volunhub/volunhub/internal/app/store/projects"
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the volunteer self-service handlers.
type Handler struct {
	Users    *userstore.Store
	Projects *projectstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a volunteers Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Projects: projectstore.New(db),
		Log:      logger,
	}
}
