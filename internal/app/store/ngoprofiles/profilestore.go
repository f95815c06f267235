package ngoprofilestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/volunhub/volunhub/internal/app/system/normalize"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists the organization profiles that extend NGO user accounts.
// Each NGO user owns at most one profile, enforced by a unique index on
// user_id.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("ngo_profiles")}
}

var (
	// ErrDuplicate is returned when a profile collides with an existing one
	// on user_id, email, or registration_number.
	ErrDuplicate = errors.New("an organization with this email or registration number already exists")
	errNoName    = errors.New("organization name is required")
	errNoEmail   = errors.New("organization email is required")
	errNoRegNo   = errors.New("registration number is required")
)

// Create inserts a profile for an NGO user after normalizing and
// validating fields.
func (s *Store) Create(ctx context.Context, p models.NGOProfile) (models.NGOProfile, error) {
	p.ID = primitive.NewObjectID()
	p.Name = normalize.Name(p.Name)
	p.NameCI = text.Fold(p.Name)
	p.Email = normalize.Email(p.Email)
	p.RegistrationNumber = normalize.Name(p.RegistrationNumber)

	if p.Name == "" {
		return models.NGOProfile{}, errNoName
	}
	if p.Email == "" {
		return models.NGOProfile{}, errNoEmail
	}
	if p.RegistrationNumber == "" {
		return models.NGOProfile{}, errNoRegNo
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.NGOProfile{}, ErrDuplicate
		}
		return models.NGOProfile{}, err
	}
	return p, nil
}

// GetByUserID loads the profile owned by the given NGO user account.
func (s *Store) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.NGOProfile, error) {
	var p models.NGOProfile
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update holds the profile fields the owning NGO may change. Identity
// fields (user_id, registration_number) stay fixed after creation.
type Update struct {
	Name          string
	Email         string
	Phone         string
	Description   string
	Website       string
	FocusAreas    []string
	Address       models.Address
	ContactPerson models.ContactPerson
	Documents     []string
}

// UpdateByUserID applies an owner-initiated edit to the profile of the
// given NGO user. Reports mongo.ErrNoDocuments when no profile exists.
func (s *Store) UpdateByUserID(ctx context.Context, userID primitive.ObjectID, upd Update) error {
	name := normalize.Name(upd.Name)
	set := bson.M{
		"name":           name,
		"name_ci":        text.Fold(name),
		"email":          normalize.Email(upd.Email),
		"phone":          normalize.Name(upd.Phone),
		"description":    upd.Description,
		"website":        normalize.Name(upd.Website),
		"focus_areas":    normalize.StringSlice(upd.FocusAreas),
		"address":        upd.Address,
		"contact_person": upd.ContactPerson,
		"documents":      normalize.StringSlice(upd.Documents),
		"updated_at":     time.Now(),
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByUserID removes the profile owned by the given NGO user.
// Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
