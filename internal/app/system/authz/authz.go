// Package authz provides role and ownership checks on top of the request
// identity loaded by the auth middleware.
package authz

import (
	"net/http"

	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the current user's role, name, ObjectID, and a found flag.
// A malformed id in the identity fails closed: ok=false means the caller can
// trust none of the other values.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return "", "", primitive.NilObjectID, false
	}
	return u.Role, u.Name, userID, true
}

// IsApprovedGovernment reports whether the current user is a Government
// official whose account is approved. Approval decisions and destructive
// admin actions require this, not just the role.
func IsApprovedGovernment(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.Role == models.RoleGovernment && u.IsApproved
}

// IsNGO reports whether the current user has the NGO role.
func IsNGO(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleNGO
}

// IsApprovedNGO reports whether the current user is an NGO whose
// registration has been approved. Project creation and volunteer approval
// require this, not just the role.
func IsApprovedNGO(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.Role == models.RoleNGO && u.IsApproved
}

// IsVolunteer reports whether the current user has the Volunteer role.
func IsVolunteer(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleVolunteer
}

// UserNGOID returns the volunteer's affiliated NGO user id, or NilObjectID
// when absent or malformed.
func UserNGOID(r *http.Request) primitive.ObjectID {
	u, ok := auth.CurrentUser(r)
	if !ok || u.NGOID == "" {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(u.NGOID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}
