package ngos

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	projectstore "github.com/volunhub/volunhub/internal/app/store/projects"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Delete handles DELETE /ngos/{id}: Government removal of an NGO account
// together with its profile. Projects the NGO owned are removed too so
// volunteers do not keep memberships in orphaned projects.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return
	}

	// Removal walks projects, profile, and the user record in turn.
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	target, err := h.Users.GetNGOByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("ngo"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "load ngo for delete", err)
		return
	}

	projects, err := h.Projects.List(ctx, projectstore.Filter{NGOID: id})
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "list ngo projects for delete", err)
		return
	}
	for _, p := range projects {
		if _, err := h.Projects.DeleteOwned(ctx, p.ID, id); err != nil {
			httpjson.LogAndWriteError(w, r, h.Log, "delete ngo project", err)
			return
		}
	}

	if _, err := h.Profiles.DeleteByUserID(ctx, id); err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "delete ngo profile", err)
		return
	}
	if _, err := h.Users.Delete(ctx, id); err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "delete ngo user", err)
		return
	}

	if role, _, actorID, ok := authz.UserCtx(r); ok {
		h.Audit.NGODeleted(ctx, r, actorID, role, id, target.OrganizationName)
	}

	h.Log.Info("ngo removed",
		zap.String("ngo_id", id.Hex()),
		zap.Int("projects_removed", len(projects)))
	httpjson.WriteMessage(w, http.StatusOK, "ngo removed")
}
