package projects

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/policy/projectpolicy"
	projectstore "github.com/volunhub/volunhub/internal/app/store/projects"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/app/system/normalize"
	"github.com/volunhub/volunhub/internal/app/system/sanitize"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type updateRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Status         string    `json:"status"`
	RequiredSkills []string  `json:"requiredSkills"`
	MaxVolunteers  *int      `json:"maxVolunteers,omitempty"`
}

// Update handles PUT /projects/{id}. Only the owning NGO; roster fields
// are never writable here, and capacity changes go through the guarded
// store path.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, p, ok := h.loadForManage(w, r)
	if !ok {
		return
	}
	_, _, ngoID, _ := authz.UserCtx(r)

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	if req.Status == "" {
		req.Status = p.Status
	}

	upd := projectstore.Update{
		Title:          sanitize.Text(req.Title),
		Description:    sanitize.Description(req.Description),
		Location:       sanitize.Text(req.Location),
		RequiredSkills: normalize.StringSlice(req.RequiredSkills),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         req.Status,
	}
	if err := h.Projects.UpdateOwned(r.Context(), id, ngoID, upd); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("project"))
			return
		}
		httpjson.WriteError(w, apierror.Validation(err.Error()))
		return
	}

	if req.MaxVolunteers != nil && *req.MaxVolunteers != p.MaxVolunteers {
		if err := h.Projects.SetMaxVolunteers(r.Context(), id, ngoID, *req.MaxVolunteers); err != nil {
			httpjson.WriteError(w, err)
			return
		}
	}

	updated, err := h.Projects.GetByID(r.Context(), id)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "reload project", err)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// Delete handles DELETE /projects/{id}. The owning NGO removes its own
// project; Government may remove any.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
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
		httpjson.LogAndWriteError(w, r, h.Log, "load project for delete", err)
		return
	}
	if !projectpolicy.CanDelete(r, p) {
		httpjson.WriteError(w, apierror.Forbidden("you cannot delete this project"))
		return
	}

	if _, err := h.Projects.DeleteOwned(r.Context(), id, p.NGOID); err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "delete project", err)
		return
	}

	if role, _, actorID, ok := authz.UserCtx(r); ok {
		h.Audit.ProjectDeleted(r.Context(), r, actorID, role, id, p.Title)
	}

	h.Log.Info("project deleted", zap.String("project_id", id.Hex()))
	httpjson.WriteMessage(w, http.StatusOK, "project deleted")
}

// loadForManage parses {id}, loads the project, and enforces the
// ownership policy shared by Update and capacity changes.
func (h *Handler) loadForManage(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, *models.Project, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return primitive.NilObjectID, nil, false
	}
	p, err := h.Projects.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("project"))
			return primitive.NilObjectID, nil, false
		}
		httpjson.LogAndWriteError(w, r, h.Log, "load project", err)
		return primitive.NilObjectID, nil, false
	}
	if !projectpolicy.CanManage(r, p) {
		httpjson.WriteError(w, apierror.Forbidden("only the owning NGO can edit this project"))
		return primitive.NilObjectID, nil, false
	}
	return id, p, true
}
