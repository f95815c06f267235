// Package projectpolicy provides authorization policies for project
// management and membership.
//
// Authorization rules:
//   - Approved NGOs create projects and manage the ones they own
//   - Approved Government officials may delete any project
//   - Volunteers apply to and leave projects; no other role can
//   - Anyone can view projects, signed in or not
package projectpolicy

import (
	"net/http"

	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/domain/models"
)

// CanCreate reports whether the current user may create projects.
func CanCreate(r *http.Request) bool {
	return authz.IsApprovedNGO(r)
}

// CanManage reports whether the current user may edit the given project.
func CanManage(r *http.Request, p *models.Project) bool {
	if p == nil || !authz.IsApprovedNGO(r) {
		return false
	}
	_, _, userID, ok := authz.UserCtx(r)
	return ok && p.NGOID == userID
}

// CanDelete reports whether the current user may delete the given
// project. Owners delete their own; approved Government may remove any.
func CanDelete(r *http.Request, p *models.Project) bool {
	return authz.IsApprovedGovernment(r) || CanManage(r, p)
}

// CanApply reports whether the current user may join or leave projects.
func CanApply(r *http.Request) bool {
	return authz.IsVolunteer(r)
}
