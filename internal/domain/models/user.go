// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values for User.Role.
const (
	RoleVolunteer  = "Volunteer"
	RoleNGO        = "NGO"
	RoleGovernment = "Government"
)

// Approval status values shared by users and volunteer approval flows.
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

// ValidRole reports whether role is one of the three supported roles.
func ValidRole(role string) bool {
	return role == RoleVolunteer || role == RoleNGO || role == RoleGovernment
}

// ValidApprovalStatus reports whether s is a recognized approval status.
func ValidApprovalStatus(s string) bool {
	return s == ApprovalPending || s == ApprovalApproved || s == ApprovalRejected
}

// User is the identity record for every role. Email is stored lowercased and
// is unique across all roles. Role-specific fields are only populated for the
// matching role; the rest stay zero and are omitted from BSON.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"` // bcrypt hash
	Role     string             `bson:"role" json:"role"`  // Volunteer | NGO | Government

	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`

	// NGO fields.
	OrganizationName   string `bson:"organization_name,omitempty" json:"organizationName,omitempty"`
	RegistrationNumber string `bson:"registration_number,omitempty" json:"registrationNumber,omitempty"`
	Website            string `bson:"website,omitempty" json:"website,omitempty"`

	// Government fields.
	Department        string `bson:"department,omitempty" json:"department,omitempty"`
	Designation       string `bson:"designation,omitempty" json:"designation,omitempty"`
	YearsOfExperience int    `bson:"years_of_experience,omitempty" json:"yearsOfExperience,omitempty"`

	// Volunteer fields. NGOID links a volunteer to the NGO user they
	// registered under; that NGO approves or rejects them.
	Skills          []string            `bson:"skills,omitempty" json:"skills,omitempty"`
	AreasOfInterest []string            `bson:"areas_of_interest,omitempty" json:"areasOfInterest,omitempty"`
	NGOID           *primitive.ObjectID `bson:"ngo_id,omitempty" json:"ngoId,omitempty"`

	// IsApproved mirrors ApprovalStatus == Approved; both are persisted so
	// list queries can filter on either without recomputing.
	IsApproved     bool   `bson:"is_approved" json:"isApproved"`
	ApprovalStatus string `bson:"approval_status" json:"approvalStatus"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
