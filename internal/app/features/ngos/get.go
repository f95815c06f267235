package ngos

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type getResponse struct {
	User    models.User        `json:"user"`
	Profile *models.NGOProfile `json:"profile,omitempty"`
}

// Get handles GET /ngos/{id}, where id is the NGO user's id. Any signed-in
// user may view an organization.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return
	}

	u, err := h.Users.GetNGOByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("ngo"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "get ngo", err)
		return
	}

	resp := getResponse{User: *u}
	if p, err := h.Profiles.GetByUserID(r.Context(), id); err == nil {
		resp.Profile = p
	}
	httpjson.Write(w, http.StatusOK, resp)
}
