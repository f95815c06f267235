package government

import (
	"github.com/volunhub/volunhub/internal/app/store/audit"
	ngoprofilestore "github.com/volunhub/volunhub/internal/app/store/ngoprofiles"
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the Government review dashboard handlers.
type Handler struct {
	Users    *userstore.Store
	Profiles *ngoprofilestore.Store
	Audit    *audit.Store
	Log      *zap.Logger
}

// NewHandler constructs a government Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Profiles: ngoprofilestore.New(db),
		Audit:    audit.New(db),
		Log:      logger,
	}
}
