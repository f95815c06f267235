package projectstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/normalize"
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
	return &Store{c: db.Collection("projects")}
}

var (
	errNoTitle       = errors.New("title is required")
	errNoDescription = errors.New("description is required")
	errBadCapacity   = errors.New("max_volunteers must be at least 1")
	errBadStatus     = errors.New(`status must be "Open"|"Closed"|"Completed"`)
	errBadDates      = errors.New("end_date must not be before start_date")
)

// Create inserts a new project owned by an NGO user. New projects always
// start Open with an empty roster.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = primitive.NewObjectID()
	p.Title = normalize.Name(p.Title)
	p.TitleCI = text.Fold(p.Title)
	p.Location = normalize.Name(p.Location)
	p.RequiredSkills = normalize.StringSlice(p.RequiredSkills)

	if p.Title == "" {
		return models.Project{}, errNoTitle
	}
	if p.Description == "" {
		return models.Project{}, errNoDescription
	}
	if p.MaxVolunteers < 1 {
		return models.Project{}, errBadCapacity
	}
	if !p.EndDate.IsZero() && !p.StartDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return models.Project{}, errBadDates
	}

	p.Status = models.ProjectOpen
	p.Volunteers = []primitive.ObjectID{}
	p.CurrentVolunteers = 0

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetByID loads a project by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Status string
	NGOID  primitive.ObjectID
}

// List returns projects matching the filter, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Project, error) {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.NGOID != primitive.NilObjectID {
		q["ngo_id"] = f.NGOID
	}
	return s.find(ctx, q)
}

// ListByVolunteer returns every project whose roster contains the given
// volunteer, newest first.
func (s *Store) ListByVolunteer(ctx context.Context, volunteerID primitive.ObjectID) ([]models.Project, error) {
	return s.find(ctx, bson.M{"volunteers": volunteerID})
}

// ListCompletedByVolunteer returns the volunteer's completed projects,
// which drive the contribution statistics on their profile.
func (s *Store) ListCompletedByVolunteer(ctx context.Context, volunteerID primitive.ObjectID) ([]models.Project, error) {
	return s.find(ctx, bson.M{"volunteers": volunteerID, "status": models.ProjectCompleted})
}

func (s *Store) find(ctx context.Context, q bson.M) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []models.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CountByNGO counts projects owned by the given NGO user, optionally
// narrowed to one status.
func (s *Store) CountByNGO(ctx context.Context, ngoID primitive.ObjectID, status string) (int64, error) {
	q := bson.M{"ngo_id": ngoID}
	if status != "" {
		q["status"] = status
	}
	return s.c.CountDocuments(ctx, q)
}

// Update holds the project fields the owning NGO may change. Roster and
// counters are managed exclusively by Apply/Leave; capacity edits go
// through SetMaxVolunteers so the occupancy invariant holds.
type Update struct {
	Title          string
	Description    string
	Location       string
	RequiredSkills []string
	StartDate      time.Time
	EndDate        time.Time
	Status         string
}

// UpdateOwned applies an owner-initiated edit. The ngoID guard keeps one
// NGO from editing another's project. Reports mongo.ErrNoDocuments when
// the (id, owner) pair matches nothing.
func (s *Store) UpdateOwned(ctx context.Context, id, ngoID primitive.ObjectID, upd Update) error {
	if !models.ValidProjectStatus(upd.Status) {
		return errBadStatus
	}
	if !upd.EndDate.IsZero() && !upd.StartDate.IsZero() && upd.EndDate.Before(upd.StartDate) {
		return errBadDates
	}
	title := normalize.Name(upd.Title)
	if title == "" {
		return errNoTitle
	}
	set := bson.M{
		"title":           title,
		"title_ci":        text.Fold(title),
		"description":     upd.Description,
		"location":        normalize.Name(upd.Location),
		"required_skills": normalize.StringSlice(upd.RequiredSkills),
		"start_date":      upd.StartDate,
		"end_date":        upd.EndDate,
		"status":          upd.Status,
		"updated_at":      time.Now(),
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "ngo_id": ngoID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetMaxVolunteers changes a project's capacity, refusing values below
// the current roster size so occupancy never exceeds capacity.
func (s *Store) SetMaxVolunteers(ctx context.Context, id, ngoID primitive.ObjectID, max int) error {
	if max < 1 {
		return errBadCapacity
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":    id,
			"ngo_id": ngoID,
			"$expr":  bson.M{"$lte": bson.A{"$current_volunteers", max}},
		},
		bson.M{"$set": bson.M{"max_volunteers": max, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apierror.Capacity("capacity cannot be set below the current number of volunteers")
	}
	return nil
}

// DeleteOwned removes a project if it belongs to the given NGO user.
// Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteOwned(ctx context.Context, id, ngoID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "ngo_id": ngoID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Apply admits a volunteer onto a project's roster. Admission, counter
// increment, and the Open-to-Closed flip when the last seat fills all
// happen in one conditional update, so concurrent applicants can never
// overfill a project. On failure the project is re-read once to classify
// the rejection.
func (s *Store) Apply(ctx context.Context, projectID, volunteerID primitive.ObjectID) (*models.Project, error) {
	filter := bson.M{
		"_id":        projectID,
		"status":     models.ProjectOpen,
		"volunteers": bson.M{"$ne": volunteerID},
		"$expr":      bson.M{"$lt": bson.A{"$current_volunteers", "$max_volunteers"}},
	}
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "volunteers", Value: bson.D{
				{Key: "$concatArrays", Value: bson.A{"$volunteers", bson.A{volunteerID}}},
			}},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "current_volunteers", Value: bson.D{{Key: "$size", Value: "$volunteers"}}},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$gte", Value: bson.A{"$current_volunteers", "$max_volunteers"}}},
				models.ProjectClosed,
				"$status",
			}}}},
			{Key: "updated_at", Value: time.Now()},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Project
	err := s.c.FindOneAndUpdate(ctx, filter, pipeline, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	return nil, s.classifyApplyFailure(ctx, projectID, volunteerID)
}

func (s *Store) classifyApplyFailure(ctx context.Context, projectID, volunteerID primitive.ObjectID) error {
	p, err := s.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apierror.NotFound("project")
		}
		return err
	}
	switch {
	case p.Status != models.ProjectOpen:
		// Checked before membership: once a project is no longer Open,
		// members and non-members alike get the same answer.
		return apierror.InvalidState("project is not open for applications")
	case p.HasVolunteer(volunteerID):
		return apierror.Duplicate("you have already joined this project")
	case p.CurrentVolunteers >= p.MaxVolunteers:
		return apierror.Capacity("project already has the maximum number of volunteers")
	default:
		// State changed again between the update and this read.
		return apierror.InvalidState("project changed while applying, try again")
	}
}

// Leave removes a volunteer from a project's roster and recomputes the
// counter from the array in the same update. The status is left alone: a
// project that filled up and closed stays Closed even when a seat frees.
// Leaving a project the volunteer is not on is a no-op.
func (s *Store) Leave(ctx context.Context, projectID, volunteerID primitive.ObjectID) (*models.Project, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "volunteers", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: "$volunteers"},
				{Key: "as", Value: "v"},
				{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$v", volunteerID}}}},
			}}}},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "current_volunteers", Value: bson.D{{Key: "$size", Value: "$volunteers"}}},
			{Key: "updated_at", Value: time.Now()},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Project
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": projectID}, pipeline, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierror.NotFound("project")
		}
		return nil, err
	}
	return &updated, nil
}
