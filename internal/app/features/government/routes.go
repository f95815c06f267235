package government

import (
	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/domain/models"
)

// MountRoutes mounts the Government dashboard routes. Approved Government
// accounts only.
func (h *Handler) MountRoutes(r chi.Router, m *auth.Manager) {
	r.Group(func(r chi.Router) {
		r.Use(m.RequireRole(models.RoleGovernment), m.RequireApproved)
		r.Get("/pending-ngos", h.PendingNGOs)
		r.Get("/approval-stats", h.ApprovalStats)
		r.Get("/audit", h.AuditTrail)
	})
}
