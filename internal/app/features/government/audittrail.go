package government

import (
	"net/http"
	"strconv"

	"github.com/volunhub/volunhub/internal/app/store/audit"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
)

type auditTrailResponse struct {
	Events []audit.Event `json:"events"`
	Total  int           `json:"total"`
}

// AuditTrail handles GET /government/audit: the recent record of
// approval verdicts and administrative deletions. Optional query
// parameters: ?category=decision|admin, ?type=<event type>, ?limit=.
func (h *Handler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	f := audit.QueryFilter{
		Category:  r.URL.Query().Get("category"),
		EventType: r.URL.Query().Get("type"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			httpjson.WriteError(w, apierror.Validationf("limit %q is not a non-negative integer", raw))
			return
		}
		f.Limit = n
	}

	events, err := h.Audit.ListRecent(r.Context(), f)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "list audit events", err)
		return
	}
	httpjson.Write(w, http.StatusOK, auditTrailResponse{Events: events, Total: len(events)})
}
