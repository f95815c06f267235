package ngoprofilestore_test

import (
	"errors"
	"testing"

	ngoprofilestore "github.com/volunhub/volunhub/internal/app/store/ngoprofiles"
	"github.com/volunhub/volunhub/internal/domain/models"
	"github.com/volunhub/volunhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create_NormalizesAndDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := ngoprofilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")

	created, err := store.Create(ctx, models.NGOProfile{
		UserID:             ngo.ID,
		Name:               "  Helping Hands  ",
		Email:              "Org@Example.COM",
		RegistrationNumber: "NGO-1234",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "Helping Hands" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
	if created.Email != "org@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_OneProfilePerUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := ngoprofilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	fix.CreateNGOProfile(ctx, ngo.ID, "Helping Hands", "org@example.com", "NGO-1234")

	_, err := store.Create(ctx, models.NGOProfile{
		UserID:             ngo.ID,
		Name:               "Helping Hands Again",
		Email:              "other@example.com",
		RegistrationNumber: "NGO-9999",
	})
	if !errors.Is(err, ngoprofilestore.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for second profile on same user, got %v", err)
	}
}

func TestStore_Create_DuplicateRegistrationNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := ngoprofilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	fix.CreateNGOProfile(ctx, first.ID, "Helping Hands", "org@example.com", "NGO-1234")

	second := fix.CreateNGO(ctx, "Green Earth", "ge@example.com")
	_, err := store.Create(ctx, models.NGOProfile{
		UserID:             second.ID,
		Name:               "Green Earth",
		Email:              "green@example.com",
		RegistrationNumber: "NGO-1234",
	})
	if !errors.Is(err, ngoprofilestore.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for reused registration number, got %v", err)
	}
}

func TestStore_UpdateByUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := ngoprofilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	fix.CreateNGOProfile(ctx, ngo.ID, "Helping Hands", "org@example.com", "NGO-1234")

	err := store.UpdateByUserID(ctx, ngo.ID, ngoprofilestore.Update{
		Name:       "Helping Hands Intl",
		Email:      "org@example.com",
		Phone:      "+1 555 0100",
		FocusAreas: []string{"education", " health ", ""},
		Address:    models.Address{City: "Pune", Country: "India"},
	})
	if err != nil {
		t.Fatalf("UpdateByUserID failed: %v", err)
	}

	got, err := store.GetByUserID(ctx, ngo.ID)
	if err != nil {
		t.Fatalf("GetByUserID failed: %v", err)
	}
	if got.Name != "Helping Hands Intl" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
	if len(got.FocusAreas) != 2 {
		t.Errorf("expected cleaned focus areas, got %v", got.FocusAreas)
	}
	if got.RegistrationNumber != "NGO-1234" {
		t.Errorf("registration number must not change on update, got %q", got.RegistrationNumber)
	}
	if got.Address.City != "Pune" {
		t.Errorf("expected address to be stored, got %+v", got.Address)
	}
}

func TestStore_UpdateByUserID_NoProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := ngoprofilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")

	err := store.UpdateByUserID(ctx, ngo.ID, ngoprofilestore.Update{Name: "X", Email: "x@example.com"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_DeleteByUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := ngoprofilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	fix.CreateNGOProfile(ctx, ngo.ID, "Helping Hands", "org@example.com", "NGO-1234")

	n, err := store.DeleteByUserID(ctx, ngo.ID)
	if err != nil {
		t.Fatalf("DeleteByUserID failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deletion, got %d", n)
	}

	n, err = store.DeleteByUserID(ctx, ngo.ID)
	if err != nil {
		t.Fatalf("second DeleteByUserID failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 deletions on repeat, got %d", n)
	}
}
