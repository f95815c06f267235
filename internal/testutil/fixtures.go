package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides builders for test documents. Builders insert directly,
// bypassing stores, so store tests exercise reads against known state.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures bound to the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct assertions.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role and approval status.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role, approval string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:             primitive.NewObjectID(),
		Name:           name,
		NameCI:         text.Fold(name),
		Email:          email,
		Password:       "$2a$04$fixturefixturefixturefuOZ9beKBkQkzZ.m1lG9kKqMviNZvmcm", // unusable hash
		Role:           role,
		ApprovalStatus: approval,
		IsApproved:     approval == models.ApprovalApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("fixture user insert: %v", err)
	}
	return u
}

// CreateVolunteer inserts an approved volunteer, optionally affiliated with
// an NGO user.
func (f *Fixtures) CreateVolunteer(ctx context.Context, name, email string, ngoID *primitive.ObjectID) models.User {
	f.t.Helper()
	u := f.CreateUser(ctx, name, email, models.RoleVolunteer, models.ApprovalApproved)
	if ngoID != nil {
		if _, err := f.db.Collection("users").UpdateByID(ctx, u.ID,
			map[string]any{"$set": map[string]any{"ngo_id": *ngoID}}); err != nil {
			f.t.Fatalf("fixture volunteer affiliation: %v", err)
		}
		u.NGOID = ngoID
	}
	return u
}

// CreateNGO inserts an approved NGO user.
func (f *Fixtures) CreateNGO(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleNGO, models.ApprovalApproved)
}

// CreateGovernment inserts a Government user (always Approved).
func (f *Fixtures) CreateGovernment(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleGovernment, models.ApprovalApproved)
}

// CreateNGOProfile inserts an organization profile for the given NGO user.
func (f *Fixtures) CreateNGOProfile(ctx context.Context, userID primitive.ObjectID, name, email, regNo string) models.NGOProfile {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.NGOProfile{
		ID:                 primitive.NewObjectID(),
		UserID:             userID,
		Name:               name,
		NameCI:             text.Fold(name),
		Email:              email,
		RegistrationNumber: regNo,
		Documents:          []string{"https://docs.example.org/cert.pdf"},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := f.db.Collection("ngo_profiles").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("fixture profile insert: %v", err)
	}
	return p
}

// CreateProject inserts an Open project owned by ngoID with the given
// capacity.
func (f *Fixtures) CreateProject(ctx context.Context, title string, ngoID primitive.ObjectID, maxVolunteers int) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:            primitive.NewObjectID(),
		Title:         title,
		TitleCI:       text.Fold(title),
		Description:   "fixture project",
		StartDate:     now.AddDate(0, 0, 7),
		EndDate:       now.AddDate(0, 0, 14),
		Location:      "Pune",
		MaxVolunteers: maxVolunteers,
		Status:        models.ProjectOpen,
		NGOID:         ngoID,
		Volunteers:    []primitive.ObjectID{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("fixture project insert: %v", err)
	}
	return p
}

// CreateCompletedProject inserts a Completed project with the given member
// and date range, for profile stats tests.
func (f *Fixtures) CreateCompletedProject(ctx context.Context, ngoID, volunteerID primitive.ObjectID, start, end time.Time) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:                primitive.NewObjectID(),
		Title:             "completed fixture",
		TitleCI:           "completed fixture",
		Description:       "fixture project",
		StartDate:         start,
		EndDate:           end,
		Location:          "Pune",
		MaxVolunteers:     10,
		CurrentVolunteers: 1,
		Status:            models.ProjectCompleted,
		NGOID:             ngoID,
		Volunteers:        []primitive.ObjectID{volunteerID},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("fixture completed project insert: %v", err)
	}
	return p
}

// CreateNotification inserts a notification for userID.
func (f *Fixtures) CreateNotification(ctx context.Context, userID primitive.ObjectID, typ, message string) models.Notification {
	f.t.Helper()

	n := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Type:      typ,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("notifications").InsertOne(ctx, n); err != nil {
		f.t.Fatalf("fixture notification insert: %v", err)
	}
	return n
}
