// Package approvalpolicy provides authorization policies for account
// approval decisions.
//
// Authorization rules:
//   - Approved Government officials decide NGO registrations
//   - Approved Government officials decide any volunteer
//   - Approved NGOs decide only volunteers affiliated with them
//   - Pending/rejected accounts cannot decide anything, whatever the role
package approvalpolicy

import (
	"net/http"

	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/domain/models"
)

// CanDecideNGO reports whether the current user may approve or reject an
// NGO registration.
func CanDecideNGO(r *http.Request) bool {
	return authz.IsApprovedGovernment(r)
}

// CanDecideVolunteer reports whether the current user may approve or
// reject the given volunteer.
func CanDecideVolunteer(r *http.Request, volunteer *models.User) bool {
	if volunteer == nil || volunteer.Role != models.RoleVolunteer {
		return false
	}
	if authz.IsApprovedGovernment(r) {
		return true
	}
	if !authz.IsApprovedNGO(r) {
		return false
	}
	u, ok := auth.CurrentUser(r)
	if !ok {
		return false
	}
	return volunteer.NGOID != nil && volunteer.NGOID.Hex() == u.ID
}
