package volunteers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Leave handles POST /volunteers/projects/{id}/leave. Leaving a project
// the caller never joined is a no-op, and a Closed project stays Closed
// when a seat frees up.
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	_, _, volunteerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return
	}

	updated, err := h.Projects.Leave(r.Context(), id, volunteerID)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}

	h.Log.Info("volunteer left project",
		zap.String("project_id", id.Hex()),
		zap.String("volunteer_id", volunteerID.Hex()),
		zap.Int("current", updated.CurrentVolunteers))
	httpjson.Write(w, http.StatusOK, updated)
}
