package volunteers

import (
	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/domain/models"
)

// MountRoutes mounts the volunteer self-service routes.
func (h *Handler) MountRoutes(r chi.Router, m *auth.Manager) {
	r.Group(func(r chi.Router) {
		r.Use(m.RequireRole(models.RoleVolunteer))
		r.Get("/profile", h.Profile)
		r.Put("/profile", h.UpdateProfile)
		r.Post("/projects/{id}/leave", h.Leave)
	})
}
