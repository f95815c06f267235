package testutil

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// WithChiURLParam adds a chi URL parameter to the request context, for
// handler tests that call handlers directly instead of through a router.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewAuthManager returns an auth manager for tests that mount routes
// through MountRoutes. Identities are injected with AsUser/AsRole rather
// than through tokens.
func NewAuthManager(t *testing.T) *auth.Manager {
	t.Helper()
	tokens, err := auth.NewTokenService(strings.Repeat("t", 32), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return auth.NewManager(tokens, zap.NewNop())
}

// AsUser injects u as the authenticated identity, bypassing token
// validation.
func AsUser(r *http.Request, u models.User) *http.Request {
	ngoID := ""
	if u.NGOID != nil {
		ngoID = u.NGOID.Hex()
	}
	return auth.WithTestUser(r, &auth.Identity{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		NGOID:      ngoID,
	})
}

// AsRole injects a synthetic identity with the given role, for gate tests
// that do not need a persisted user.
func AsRole(r *http.Request, role string) *http.Request {
	return auth.WithTestUser(r, &auth.Identity{
		ID:         primitive.NewObjectID().Hex(),
		Name:       "Test " + role,
		Email:      "test@example.org",
		Role:       role,
		IsApproved: true,
	})
}
