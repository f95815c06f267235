package ngoconsole

import (
	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/domain/models"
)

// MountRoutes mounts the NGO console routes. Approved NGO accounts only;
// the affiliation check on decisions lives in the handlers because it
// depends on the target volunteer.
func (h *Handler) MountRoutes(r chi.Router, m *auth.Manager) {
	r.Group(func(r chi.Router) {
		r.Use(m.RequireRole(models.RoleNGO), m.RequireApproved)
		r.Get("/pending-volunteers", h.PendingVolunteers)
		r.Post("/volunteers/{id}/approve", h.Approve)
		r.Post("/volunteers/{id}/reject", h.Reject)
	})
}
