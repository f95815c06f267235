package projects

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/policy/projectpolicy"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Apply handles POST /projects/{id}/apply. Admission is a single
// compare-and-set in the store, so concurrent applicants can never push
// a project past its capacity.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	if !projectpolicy.CanApply(r) {
		httpjson.WriteError(w, apierror.Forbidden("only volunteers can apply to projects"))
		return
	}
	_, name, volunteerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return
	}

	updated, err := h.Projects.Apply(r.Context(), id, volunteerID)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}

	h.Notify.Info(r.Context(), updated.NGOID,
		fmt.Sprintf("%s joined your project %q (%d/%d volunteers).",
			name, updated.Title, updated.CurrentVolunteers, updated.MaxVolunteers))

	h.Log.Info("volunteer joined project",
		zap.String("project_id", id.Hex()),
		zap.String("volunteer_id", volunteerID.Hex()),
		zap.Int("current", updated.CurrentVolunteers),
		zap.String("status", updated.Status))
	httpjson.Write(w, http.StatusOK, updated)
}
