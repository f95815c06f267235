package volunteers

import (
	"errors"
	"net/http"
	"time"

	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/app/system/sanitize"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type profileResponse struct {
	User        models.User      `json:"user"`
	Projects    []models.Project `json:"projects"`
	TotalHours  int              `json:"totalHours"`
	ImpactScore int              `json:"impactScore"`
}

// Profile handles GET /volunteers/profile: the caller's account, every
// project they are on, and contribution statistics computed from
// completed projects.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}

	u, err := h.Users.GetVolunteerByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("volunteer"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "load volunteer", err)
		return
	}

	all, err := h.Projects.ListByVolunteer(r.Context(), userID)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "list volunteer projects", err)
		return
	}

	hours, score := contributionStats(all)
	httpjson.Write(w, http.StatusOK, profileResponse{
		User:        *u,
		Projects:    all,
		TotalHours:  hours,
		ImpactScore: score,
	})
}

// contributionStats derives totalHours and impactScore from the
// volunteer's completed projects: one working day (8 hours) per started
// 24-hour period of the project's span, and 10 points per completed
// project.
func contributionStats(projects []models.Project) (totalHours, impactScore int) {
	for _, p := range projects {
		if p.Status != models.ProjectCompleted {
			continue
		}
		impactScore += 10
		if p.EndDate.IsZero() || p.StartDate.IsZero() || p.EndDate.Before(p.StartDate) {
			continue
		}
		span := p.EndDate.Sub(p.StartDate)
		days := int(span / (24 * time.Hour))
		if span%(24*time.Hour) != 0 {
			days++
		}
		totalHours += days * 8
	}
	return totalHours, impactScore
}

type updateProfileRequest struct {
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	AreasOfInterest []string `json:"areasOfInterest"`
}

// UpdateProfile handles PUT /volunteers/profile: the volunteer's own
// name, skills, and interests. Email, role, approval, and affiliation are
// not editable here.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}

	var req updateProfileRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	name := sanitize.Text(req.Name)
	if name == "" {
		httpjson.WriteError(w, apierror.Validation("name is required"))
		return
	}

	err := h.Users.UpdateVolunteerProfile(r.Context(), userID, userstore.VolunteerUpdate{
		Name:            name,
		Skills:          sanitizeAll(req.Skills),
		AreasOfInterest: sanitizeAll(req.AreasOfInterest),
	})
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "update volunteer profile", err)
		return
	}

	updated, err := h.Users.GetVolunteerByID(r.Context(), userID)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "reload volunteer", err)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

func sanitizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, sanitize.Text(s))
	}
	return out
}
