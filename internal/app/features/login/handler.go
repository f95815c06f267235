package login

import (
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns credential login.
type Handler struct {
	Users     *userstore.Store
	Tokens    *auth.TokenService
	Passwords *auth.PasswordService
	Limiter   *ratelimit.LoginLimiter // nil disables throttling
	Log       *zap.Logger
}

// NewHandler constructs a login Handler.
func NewHandler(db *mongo.Database, tokens *auth.TokenService, passwords *auth.PasswordService, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(db),
		Tokens:    tokens,
		Passwords: passwords,
		Log:       logger,
	}
}
