// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project status values.
const (
	ProjectOpen      = "Open"
	ProjectClosed    = "Closed"
	ProjectCompleted = "Completed"
)

// ValidProjectStatus reports whether s is a recognized project status.
func ValidProjectStatus(s string) bool {
	return s == ProjectOpen || s == ProjectClosed || s == ProjectCompleted
}

// Project is a unit of volunteer work owned by one NGO user.
//
// Invariants maintained by the membership workflow:
//   - CurrentVolunteers == len(Volunteers) after every mutation
//   - CurrentVolunteers <= MaxVolunteers
//   - Status flips Open -> Closed in the same update that fills the last
//     slot; a volunteer leaving never reopens a Closed project.
type Project struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title             string               `bson:"title" json:"title"`
	TitleCI           string               `bson:"title_ci" json:"-"`
	Description       string               `bson:"description" json:"description"`
	Image             string               `bson:"image,omitempty" json:"image,omitempty"`
	StartDate         time.Time            `bson:"start_date" json:"startDate"`
	EndDate           time.Time            `bson:"end_date" json:"endDate"`
	Location          string               `bson:"location" json:"location"`
	MaxVolunteers     int                  `bson:"max_volunteers" json:"maxVolunteers"`
	CurrentVolunteers int                  `bson:"current_volunteers" json:"currentVolunteers"`
	Status            string               `bson:"status" json:"status"` // Open | Closed | Completed
	NGOID             primitive.ObjectID   `bson:"ngo_id" json:"ngoId"`
	Volunteers        []primitive.ObjectID `bson:"volunteers" json:"volunteers"`
	RequiredSkills    []string             `bson:"required_skills,omitempty" json:"requiredSkills,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasVolunteer reports whether id is in the project's volunteer set.
func (p *Project) HasVolunteer(id primitive.ObjectID) bool {
	for _, v := range p.Volunteers {
		if v == id {
			return true
		}
	}
	return false
}
