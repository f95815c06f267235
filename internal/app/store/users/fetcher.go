package userstore

import (
	"context"
	"errors"

	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/app/system/timeouts"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher implements auth.UserFetcher, loading fresh user data on each
// request so approval and role changes take effect without reissuing tokens.
type Fetcher struct {
	users *mongo.Collection
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{users: db.Collection("users")}
}

// ErrUnknownUser is returned when the token's subject no longer maps to a
// user document.
var ErrUnknownUser = errors.New("unknown user")

// FetchIdentity retrieves a user by ID and builds the request identity.
func (f *Fetcher) FetchIdentity(ctx context.Context, userID string) (*auth.Identity, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUnknownUser
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short)
	defer cancel()

	var u models.User
	proj := options.FindOne().SetProjection(bson.M{
		"_id":             1,
		"name":            1,
		"email":           1,
		"role":            1,
		"approval_status": 1,
		"is_approved":     1,
		"ngo_id":          1,
	})
	if err := f.users.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	id := &auth.Identity{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.ApprovalStatus == models.ApprovalApproved,
	}
	if u.NGOID != nil {
		id.NGOID = u.NGOID.Hex()
	}
	return id, nil
}
