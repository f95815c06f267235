package projects

import (
	"net/http"
	"time"

	"github.com/volunhub/volunhub/internal/app/policy/projectpolicy"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/app/system/normalize"
	"github.com/volunhub/volunhub/internal/app/system/sanitize"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	MaxVolunteers  int       `json:"maxVolunteers"`
	RequiredSkills []string  `json:"requiredSkills"`
	Image          string    `json:"image,omitempty"`
}

// Create handles POST /projects. Approved NGOs only.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !projectpolicy.CanCreate(r) {
		httpjson.WriteError(w, apierror.Forbidden("only approved NGO accounts can create projects"))
		return
	}
	_, _, ngoID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	created, err := h.Projects.Create(r.Context(), models.Project{
		Title:          sanitize.Text(req.Title),
		Description:    sanitize.Description(req.Description),
		Location:       sanitize.Text(req.Location),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		MaxVolunteers:  req.MaxVolunteers,
		RequiredSkills: normalize.StringSlice(req.RequiredSkills),
		Image:          sanitize.Text(req.Image),
		NGOID:          ngoID,
	})
	if err != nil {
		httpjson.WriteError(w, apierror.Validation(err.Error()))
		return
	}

	h.Log.Info("project created",
		zap.String("project_id", created.ID.Hex()),
		zap.String("ngo_id", ngoID.Hex()))
	httpjson.Write(w, http.StatusCreated, created)
}
