package login

import (
	"errors"
	"net/http"

	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Serve handles POST /auth/login. Unknown email and wrong password get
// the same answer so the endpoint does not leak which emails exist.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.WriteError(w, apierror.Validation("email and password are required"))
		return
	}

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, req.Email); !ok {
			httpjson.Write(w, http.StatusTooManyRequests, httpjson.ErrorResponse{
				Error:   "rate_limited",
				Message: reason,
			})
			return
		}
	}

	u, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.Unauthorized("invalid email or password"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "login lookup", err)
		return
	}
	if !h.Passwords.Verify(u.Password, req.Password) {
		httpjson.WriteError(w, apierror.Unauthorized("invalid email or password"))
		return
	}

	token, err := h.Tokens.Generate(u.ID.Hex())
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "issue token", err)
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetEmail(req.Email)
	}

	h.Log.Info("login", zap.String("user_id", u.ID.Hex()), zap.String("role", u.Role))
	httpjson.Write(w, http.StatusOK, loginResponse{Token: token, User: *u})
}
