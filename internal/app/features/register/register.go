package register

import (
	"errors"
	"net/http"

	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/app/system/normalize"
	"github.com/volunhub/volunhub/internal/app/system/sanitize"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	// Volunteer fields
	Skills          []string `json:"skills,omitempty"`
	AreasOfInterest []string `json:"areasOfInterest,omitempty"`
	NGOID           string   `json:"ngoId,omitempty"`

	// NGO fields
	OrganizationName   string   `json:"organizationName,omitempty"`
	RegistrationNumber string   `json:"registrationNumber,omitempty"`
	Website            string   `json:"website,omitempty"`
	Description        string   `json:"description,omitempty"`
	Documents          []string `json:"documents,omitempty"`
}

type registerResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

// Serve handles POST /auth/register. Every new account starts Pending;
// NGO registrations that carry a registration number also get their
// organization profile created in the same request.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	if len(req.Password) < 8 {
		httpjson.WriteError(w, apierror.Validation("password must be at least 8 characters"))
		return
	}
	hash, err := h.Passwords.Hash(req.Password)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "hash password", err)
		return
	}

	u := models.User{
		Name:     sanitize.Text(req.Name),
		Email:    req.Email,
		Password: hash,
		Role:     normalize.Role(req.Role),
	}

	switch u.Role {
	case models.RoleVolunteer:
		u.Skills = sanitizeAll(req.Skills)
		u.AreasOfInterest = sanitizeAll(req.AreasOfInterest)
		if req.NGOID != "" {
			ngoID, err := primitive.ObjectIDFromHex(req.NGOID)
			if err != nil {
				httpjson.WriteError(w, apierror.Validation("ngoId is not a valid id"))
				return
			}
			if _, err := h.Users.GetNGOByID(r.Context(), ngoID); err != nil {
				httpjson.WriteError(w, apierror.Validation("ngoId does not reference an NGO account"))
				return
			}
			u.NGOID = &ngoID
		}
	case models.RoleNGO:
		u.OrganizationName = sanitize.Text(req.OrganizationName)
		u.RegistrationNumber = sanitize.Text(req.RegistrationNumber)
		u.Website = sanitize.Text(req.Website)
	case models.RoleGovernment:
		// Government accounts are provisioned by the operator at startup.
		// No registration or approval path exists for them, so accepting
		// one here would create an account nothing can ever approve.
		httpjson.WriteError(w, apierror.Forbidden("Government accounts cannot be registered"))
		return
	default:
		httpjson.WriteError(w, apierror.Validation(`role must be "Volunteer" or "NGO"`))
		return
	}

	created, err := h.Users.Create(r.Context(), u)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.WriteError(w, apierror.Duplicate(err.Error()))
			return
		}
		httpjson.WriteError(w, apierror.Validation(err.Error()))
		return
	}

	// An NGO that supplied registration details gets its organization
	// profile in the same request. Profile failure does not undo the
	// account; the NGO can retry via POST /ngos.
	if created.Role == models.RoleNGO && req.RegistrationNumber != "" {
		_, err := h.Profiles.Create(r.Context(), models.NGOProfile{
			UserID:             created.ID,
			Name:               created.OrganizationName,
			Email:              created.Email,
			RegistrationNumber: created.RegistrationNumber,
			Website:            created.Website,
			Description:        sanitize.Description(req.Description),
			Documents:          normalize.StringSlice(req.Documents),
		})
		if err != nil {
			h.Log.Warn("registration profile create failed",
				zap.String("user_id", created.ID.Hex()), zap.Error(err))
		}
	}

	h.Notify.Info(r.Context(), created.ID,
		"Welcome to VolunHub. Your account is awaiting approval.")

	h.Log.Info("account registered",
		zap.String("user_id", created.ID.Hex()),
		zap.String("role", created.Role))

	httpjson.Write(w, http.StatusCreated, registerResponse{
		Message: "registration received; your account is awaiting approval",
		User:    created,
	})
}

func sanitizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, sanitize.Text(s))
	}
	return normalize.StringSlice(out)
}
