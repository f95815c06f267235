// internal/domain/models/ngoprofile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the postal address block on an NGO profile.
type Address struct {
	Street     string `bson:"street,omitempty" json:"street,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
	PostalCode string `bson:"postal_code,omitempty" json:"postalCode,omitempty"`
}

// ContactPerson is the named contact on an NGO profile.
type ContactPerson struct {
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"`
}

// NGOProfile is the registerable organization record for an NGO. It is a 1:1
// extension of the NGO's User record, keyed by a unique user_id; the approval
// status lives on the User record only, so there is a single source of truth
// for whether the NGO is approved.
type NGOProfile struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"user_id" json:"userId"`
	Name               string             `bson:"name" json:"name"`
	NameCI             string             `bson:"name_ci" json:"-"`
	Email              string             `bson:"email" json:"email"`
	RegistrationNumber string             `bson:"registration_number" json:"registrationNumber"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	Website            string             `bson:"website,omitempty" json:"website,omitempty"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	FocusAreas         []string           `bson:"focus_areas,omitempty" json:"focusAreas,omitempty"`
	Address            Address            `bson:"address,omitempty" json:"address"`
	ContactPerson      ContactPerson      `bson:"contact_person,omitempty" json:"contactPerson"`
	Documents          []string           `bson:"documents" json:"documents"` // URLs, each non-empty

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
