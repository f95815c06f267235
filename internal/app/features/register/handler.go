package register

import (
	ngoprofilestore "github.com/volunhub/volunhub/internal/app/store/ngoprofiles"
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/app/system/notify"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns account registration.
type Handler struct {
	Users     *userstore.Store
	Profiles  *ngoprofilestore.Store
	Passwords *auth.PasswordService
	Notify    *notify.Dispatcher
	Log       *zap.Logger
}

// NewHandler constructs a registration Handler.
func NewHandler(db *mongo.Database, passwords *auth.PasswordService, dispatcher *notify.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(db),
		Profiles:  ngoprofilestore.New(db),
		Passwords: passwords,
		Notify:    dispatcher,
		Log:       logger,
	}
}
