package register

import "github.com/go-chi/chi/v5"

// MountRoutes mounts registration under the auth prefix.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.Serve)
}
