package login

import "github.com/go-chi/chi/v5"

// MountRoutes mounts login under the auth prefix.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.Serve)
}
