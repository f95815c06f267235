package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/volunhub/volunhub/internal/app/system/normalize"
	"github.com/volunhub/volunhub/internal/app/system/paging"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "Volunteer"|"NGO"|"Government"`)
	errNoName         = errors.New("name is required")
	errNoEmail        = errors.New("email is required")
	errNoPassword     = errors.New("password is required")
	errOrgNameNeeded  = errors.New("NGO accounts must have organization_name")
)

// Create inserts a new user after normalizing & validating fields.
// The Password field must already be a bcrypt hash; this store never
// sees plaintext credentials.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.NameCI = text.Fold(u.Name)
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)

	if u.Name == "" {
		return models.User{}, errNoName
	}
	if u.Email == "" {
		return models.User{}, errNoEmail
	}
	if u.Password == "" {
		return models.User{}, errNoPassword
	}
	if !models.ValidRole(u.Role) {
		return models.User{}, errBadRole
	}
	if u.Role == models.RoleNGO && u.OrganizationName == "" {
		return models.User{}, errOrgNameNeeded
	}

	// Every account starts Pending; a Government reviewer moves it on.
	if u.ApprovalStatus == "" {
		u.ApprovalStatus = models.ApprovalPending
	}
	if !models.ValidApprovalStatus(u.ApprovalStatus) {
		u.ApprovalStatus = models.ApprovalPending
	}
	u.IsApproved = u.ApprovalStatus == models.ApprovalApproved

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetVolunteerByID loads a user by ObjectID, returning an error if the user
// does not exist or is not a Volunteer.
func (s *Store) GetVolunteerByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "role": models.RoleVolunteer}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetNGOByID loads a user by ObjectID, returning an error if the user
// does not exist or is not an NGO account.
func (s *Store) GetNGOByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "role": models.RoleNGO}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// TransitionApproval moves a user's approval status from one state to
// another in a single conditional update. It reports false when no user
// matched the (id, role, from) triple, which callers use to distinguish
// "already decided" from "decided just now".
func (s *Store) TransitionApproval(ctx context.Context, id primitive.ObjectID, role, from, to string) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "role": role, "approval_status": from},
		bson.M{"$set": bson.M{
			"approval_status": to,
			"is_approved":     to == models.ApprovalApproved,
			"updated_at":      time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// ListPendingByRole returns users of the given role still awaiting review,
// newest first.
func (s *Store) ListPendingByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.list(ctx, bson.M{"role": role, "approval_status": models.ApprovalPending})
}

// ListPendingVolunteersForNGO returns pending volunteers affiliated with
// the given NGO account, newest first.
func (s *Store) ListPendingVolunteersForNGO(ctx context.Context, ngoID primitive.ObjectID) ([]models.User, error) {
	return s.list(ctx, bson.M{
		"role":            models.RoleVolunteer,
		"approval_status": models.ApprovalPending,
		"ngo_id":          ngoID,
	})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRolePage returns one keyset page of users with the given role,
// ordered by folded name with _id as tiebreak. The slice carries one
// look-ahead row beyond paging.PageSize; the caller trims it.
func (s *Store) ListByRolePage(ctx context.Context, role string, cfg paging.KeysetConfig) ([]models.User, error) {
	filter := bson.M{"role": role}
	if window := cfg.KeysetWindow("name_ci"); window != nil {
		for k, v := range window {
			filter[k] = v
		}
	}

	opts := options.Find()
	cfg.ApplyToFind(opts, "name_ci")

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CountByRoleAndStatus counts users with the given role and approval status.
func (s *Store) CountByRoleAndStatus(ctx context.Context, role, status string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"role": role, "approval_status": status})
}

// VolunteerUpdate holds the profile fields a volunteer may change about
// themselves.
type VolunteerUpdate struct {
	Name            string
	Skills          []string
	AreasOfInterest []string
}

// UpdateVolunteerProfile applies an owner-initiated profile edit. Only
// users with role="Volunteer" match; role, email, and approval fields are
// deliberately not touchable through this path.
func (s *Store) UpdateVolunteerProfile(ctx context.Context, id primitive.ObjectID, upd VolunteerUpdate) error {
	name := normalize.Name(upd.Name)
	set := bson.M{
		"name":              name,
		"name_ci":           text.Fold(name),
		"skills":            normalize.StringSlice(upd.Skills),
		"areas_of_interest": normalize.StringSlice(upd.AreasOfInterest),
		"updated_at":        time.Now(),
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "role": models.RoleVolunteer}, bson.M{"$set": set})
	return err
}

// SetVolunteerAffiliation points a volunteer at the NGO account they
// registered under. A nil ngoID clears the affiliation.
func (s *Store) SetVolunteerAffiliation(ctx context.Context, id primitive.ObjectID, ngoID *primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"ngo_id": ngoID, "updated_at": time.Now()}}
	if ngoID == nil {
		update = bson.M{
			"$unset": bson.M{"ngo_id": ""},
			"$set":   bson.M{"updated_at": time.Now()},
		}
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "role": models.RoleVolunteer}, update)
	return err
}

// Delete removes a user by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
