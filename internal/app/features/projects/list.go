package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	projectstore "github.com/volunhub/volunhub/internal/app/store/projects"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// projectView is a project with its owner resolved for display.
type projectView struct {
	models.Project
	OwnerName        string   `json:"ownerName,omitempty"`
	OrganizationName string   `json:"organizationName,omitempty"`
	MemberNames      []string `json:"memberNames,omitempty"`
}

type listProjectsResponse struct {
	Projects []projectView `json:"projects"`
	Total    int           `json:"total"`
}

// List handles GET /projects. Optional ?status= and ?ngo= filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var filter projectstore.Filter
	if s := r.URL.Query().Get("status"); s != "" {
		if !models.ValidProjectStatus(s) {
			httpjson.WriteError(w, apierror.Validation(`status must be "Open", "Closed", or "Completed"`))
			return
		}
		filter.Status = s
	}
	if ngo := r.URL.Query().Get("ngo"); ngo != "" {
		id, err := primitive.ObjectIDFromHex(ngo)
		if err != nil {
			httpjson.WriteError(w, apierror.Validation("ngo is not a valid id"))
			return
		}
		filter.NGOID = id
	}

	list, err := h.Projects.List(r.Context(), filter)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "list projects", err)
		return
	}

	views := make([]projectView, 0, len(list))
	owners := map[primitive.ObjectID]*models.User{}
	for _, p := range list {
		v := projectView{Project: p}
		owner, ok := owners[p.NGOID]
		if !ok {
			owner, _ = h.Users.GetByID(r.Context(), p.NGOID)
			owners[p.NGOID] = owner
		}
		if owner != nil {
			v.OwnerName = owner.Name
			v.OrganizationName = owner.OrganizationName
		}
		views = append(views, v)
	}

	httpjson.Write(w, http.StatusOK, listProjectsResponse{Projects: views, Total: len(views)})
}

// Get handles GET /projects/{id}, resolving the owner and the volunteer
// roster to display names.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return
	}

	p, err := h.Projects.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("project"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "get project", err)
		return
	}

	v := projectView{Project: *p}
	if owner, err := h.Users.GetByID(r.Context(), p.NGOID); err == nil {
		v.OwnerName = owner.Name
		v.OrganizationName = owner.OrganizationName
	}
	v.MemberNames = h.memberNames(r.Context(), p.Volunteers)

	httpjson.Write(w, http.StatusOK, v)
}

func (h *Handler) memberNames(ctx context.Context, ids []primitive.ObjectID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if u, err := h.Users.GetByID(ctx, id); err == nil {
			names = append(names, u.Name)
		}
	}
	return names
}
