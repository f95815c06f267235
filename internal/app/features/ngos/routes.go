package ngos

import (
	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/domain/models"
)

// MountRoutes mounts the NGO routes on the given router. The directory
// listing and deletion are for approved Government accounts; profile reads
// are public; profile writes need a signed-in user.
func (h *Handler) MountRoutes(r chi.Router, m *auth.Manager) {
	r.Get("/{id}", h.Get)
	r.Group(func(r chi.Router) {
		r.Use(m.RequireRole(models.RoleGovernment), m.RequireApproved)
		r.Get("/", h.List)
		r.Patch("/{id}/status", h.SetStatus)
		r.Delete("/{id}", h.Delete)
	})
	r.Group(func(r chi.Router) {
		r.Use(m.RequireSignedIn)
		r.Post("/", h.CreateProfile)
		r.Patch("/{id}", h.Patch)
	})
}
