package government

import (
	"net/http"

	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/domain/models"
)

// pendingNGO pairs a pending NGO account with its registration detail.
type pendingNGO struct {
	User    models.User        `json:"user"`
	Profile *models.NGOProfile `json:"profile,omitempty"`
}

type pendingNGOsResponse struct {
	NGOs  []pendingNGO `json:"ngos"`
	Total int          `json:"total"`
}

// PendingNGOs handles GET /government/pending-ngos: the review queue of
// NGO registrations awaiting a decision, newest first.
func (h *Handler) PendingNGOs(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListPendingByRole(r.Context(), models.RoleNGO)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "list pending ngos", err)
		return
	}

	rows := make([]pendingNGO, 0, len(users))
	for _, u := range users {
		row := pendingNGO{User: u}
		if p, err := h.Profiles.GetByUserID(r.Context(), u.ID); err == nil {
			row.Profile = p
		}
		rows = append(rows, row)
	}
	httpjson.Write(w, http.StatusOK, pendingNGOsResponse{NGOs: rows, Total: len(rows)})
}

type roleStats struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type approvalStatsResponse struct {
	NGOs       roleStats `json:"ngos"`
	Volunteers roleStats `json:"volunteers"`
}

// ApprovalStats handles GET /government/approval-stats: counts of NGO
// and volunteer accounts by approval status.
func (h *Handler) ApprovalStats(w http.ResponseWriter, r *http.Request) {
	resp := approvalStatsResponse{}
	for _, rs := range []struct {
		role string
		dst  *roleStats
	}{
		{models.RoleNGO, &resp.NGOs},
		{models.RoleVolunteer, &resp.Volunteers},
	} {
		var err error
		if rs.dst.Pending, err = h.Users.CountByRoleAndStatus(r.Context(), rs.role, models.ApprovalPending); err != nil {
			httpjson.LogAndWriteError(w, r, h.Log, "count pending", err)
			return
		}
		if rs.dst.Approved, err = h.Users.CountByRoleAndStatus(r.Context(), rs.role, models.ApprovalApproved); err != nil {
			httpjson.LogAndWriteError(w, r, h.Log, "count approved", err)
			return
		}
		if rs.dst.Rejected, err = h.Users.CountByRoleAndStatus(r.Context(), rs.role, models.ApprovalRejected); err != nil {
			httpjson.LogAndWriteError(w, r, h.Log, "count rejected", err)
			return
		}
	}
	httpjson.Write(w, http.StatusOK, resp)
}
