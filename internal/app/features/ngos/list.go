package ngos

import (
	"context"
	"net/http"

	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/app/system/paging"
	"github.com/volunhub/volunhub/internal/app/system/timeouts"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ngoRow is one entry in the Government directory listing.
type ngoRow struct {
	User           models.User        `json:"user"`
	Profile        *models.NGOProfile `json:"profile,omitempty"`
	ActiveProjects int64              `json:"activeProjects"`
	TotalProjects  int64              `json:"totalProjects"`
}

type listResponse struct {
	NGOs       []ngoRow `json:"ngos"`
	Total      int      `json:"total"`
	PrevCursor string   `json:"prevCursor,omitempty"`
	NextCursor string   `json:"nextCursor,omitempty"`
}

// List handles GET /ngos: NGO accounts with profile and project counts,
// ordered by name and paged by ?before/?after cursors. Government only.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	before := r.URL.Query().Get("before")
	after := r.URL.Query().Get("after")

	cfg := paging.ConfigureKeyset(before, after)
	users, err := h.Users.ListByRolePage(ctx, models.RoleNGO, cfg)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "list ngo users", err)
		return
	}

	page := paging.TrimPage(&users, before, after)
	if cfg.Direction == paging.Backward {
		paging.Reverse(users)
	}

	rows := make([]ngoRow, 0, len(users))
	for _, u := range users {
		row := ngoRow{User: u}
		if p, err := h.Profiles.GetByUserID(ctx, u.ID); err == nil {
			row.Profile = p
		}
		if n, err := h.Projects.CountByNGO(ctx, u.ID, models.ProjectOpen); err == nil {
			row.ActiveProjects = n
		}
		if n, err := h.Projects.CountByNGO(ctx, u.ID, ""); err == nil {
			row.TotalProjects = n
		}
		rows = append(rows, row)
	}

	resp := listResponse{NGOs: rows, Total: len(rows)}
	prev, next := paging.BuildCursors(users,
		func(u models.User) string { return u.NameCI },
		func(u models.User) primitive.ObjectID { return u.ID })
	if page.HasPrev {
		resp.PrevCursor = prev
	}
	if page.HasNext {
		resp.NextCursor = next
	}

	httpjson.Write(w, http.StatusOK, resp)
}
