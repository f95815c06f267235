package notifications

import (
	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/auth"
)

// MountRoutes mounts the notification inbox routes. Any signed-in user;
// every operation is scoped to the caller.
func (h *Handler) MountRoutes(r chi.Router, m *auth.Manager) {
	r.Group(func(r chi.Router) {
		r.Use(m.RequireSignedIn)
		r.Get("/", h.List)
		r.Post("/read-all", h.MarkAllRead)
		r.Patch("/{id}/read", h.MarkRead)
		r.Get("/preferences", h.GetPreferences)
		r.Put("/preferences", h.SetPreferences)
	})
}
