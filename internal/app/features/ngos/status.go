package ngos

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

type setStatusRequest struct {
	Status string `json:"status"` // Approved | Rejected
	Reason string `json:"reason,omitempty"`
}

// SetStatus handles PATCH /ngos/{id}/status: the Government decision on
// an NGO registration. Only Pending accounts can be decided; a decided
// account never changes again through this endpoint.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if !approvalpolicy.CanDecideNGO(r) {
		httpjson.WriteError(w, apierror.Forbidden("only Government officials decide NGO registrations"))
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return
	}

	var req setStatusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	if req.Status != models.ApprovalApproved && req.Status != models.ApprovalRejected {
		httpjson.WriteError(w, apierror.Validation(`status must be "Approved" or "Rejected"`))
		return
	}

	target, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("ngo"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "load ngo for decision", err)
		return
	}
	if target.Role != models.RoleNGO {
		httpjson.WriteError(w, apierror.Validation("user is not an NGO account"))
		return
	}

	moved, err := h.Users.TransitionApproval(r.Context(), id, models.RoleNGO, models.ApprovalPending, req.Status)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "ngo approval transition", err)
		return
	}
	if !moved {
		httpjson.WriteError(w, apierror.InvalidState(
			fmt.Sprintf("registration is already %s", target.ApprovalStatus)))
		return
	}

	reason := sanitize.Text(req.Reason)
	switch req.Status {
	case models.ApprovalApproved:
		h.Notify.Approval(r.Context(), id, "Your NGO registration has been approved.")
	case models.ApprovalRejected:
		msg := "Your NGO registration has been rejected."
		if reason != "" {
			msg += " Reason: " + reason
		}
		h.Notify.Rejection(r.Context(), id, msg)
	}

	if role, _, actorID, ok := authz.UserCtx(r); ok {
		h.Audit.NGODecision(r.Context(), r, actorID, role, id, req.Status == models.ApprovalApproved, reason)
	}

	h.Log.Info("ngo registration decided",
		zap.String("ngo_id", id.Hex()),
		zap.String("status", req.Status))
	httpjson.WriteMessage(w, http.StatusOK, "status updated")
}
