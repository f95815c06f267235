package ngoconsole

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/policy/approvalpolicy"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/app/system/sanitize"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type pendingVolunteersResponse struct {
	Volunteers []models.User `json:"volunteers"`
	Total      int           `json:"total"`
}

// PendingVolunteers handles GET /ngo/pending-volunteers: the caller's
// review queue of volunteers who registered under this NGO.
func (h *Handler) PendingVolunteers(w http.ResponseWriter, r *http.Request) {
	_, _, ngoID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}

	vols, err := h.Users.ListPendingVolunteersForNGO(r.Context(), ngoID)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "list pending volunteers", err)
		return
	}
	httpjson.Write(w, http.StatusOK, pendingVolunteersResponse{Volunteers: vols, Total: len(vols)})
}

type decideRequest struct {
	Reason string `json:"reason,omitempty"`
}

// Approve handles POST /ngo/volunteers/{id}/approve.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, models.ApprovalApproved)
}

// Reject handles POST /ngo/volunteers/{id}/reject.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, models.ApprovalRejected)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, status string) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return
	}

	var req decideRequest
	if r.ContentLength > 0 {
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}
	}

	target, err := h.Users.GetVolunteerByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("volunteer"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "load volunteer for decision", err)
		return
	}
	if !approvalpolicy.CanDecideVolunteer(r, target) {
		httpjson.WriteError(w, apierror.Forbidden("you cannot decide this volunteer"))
		return
	}

	moved, err := h.Users.TransitionApproval(r.Context(), id, models.RoleVolunteer, models.ApprovalPending, status)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "volunteer approval transition", err)
		return
	}
	if !moved {
		httpjson.WriteError(w, apierror.InvalidState(
			fmt.Sprintf("volunteer is already %s", target.ApprovalStatus)))
		return
	}

	reason := sanitize.Text(req.Reason)
	switch status {
	case models.ApprovalApproved:
		h.Notify.Approval(r.Context(), id, "Your volunteer account has been approved.")
	case models.ApprovalRejected:
		msg := "Your volunteer application has been rejected."
		if reason != "" {
			msg += " Reason: " + reason
		}
		h.Notify.Rejection(r.Context(), id, msg)
	}

	if role, _, actorID, ok := authz.UserCtx(r); ok {
		h.Audit.VolunteerDecision(r.Context(), r, actorID, role, id, status == models.ApprovalApproved, reason)
	}

	h.Log.Info("volunteer decided",
		zap.String("volunteer_id", id.Hex()),
		zap.String("status", status))
	httpjson.WriteMessage(w, http.StatusOK, "status updated")
}
