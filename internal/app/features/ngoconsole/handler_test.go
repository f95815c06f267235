package ngoconsole_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/volunhub/volunhub/internal/app/features/ngoconsole"
	notificationstore "github.com/volunhub/volunhub/internal/app/store/notifications"
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/notify"
	"github.com/volunhub/volunhub/internal/domain/models"
	"github.com/volunhub/volunhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, db *mongo.Database) *ngoconsole.Handler {
	t.Helper()
	dispatcher := notify.NewDispatcher(notificationstore.New(db), zap.NewNop())
	return ngoconsole.NewHandler(db, dispatcher, zap.NewNop())
}

func pendingVolunteerFor(t *testing.T, db *mongo.Database, fix *testutil.Fixtures, ngoID primitive.ObjectID, email string) models.User {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	v := fix.CreateUser(ctx, "Pending "+email, email, models.RoleVolunteer, models.ApprovalPending)
	if err := userstore.New(db).SetVolunteerAffiliation(ctx, v.ID, &ngoID); err != nil {
		t.Fatalf("affiliate volunteer: %v", err)
	}
	v.NGOID = &ngoID
	return v
}

func TestApprove_AffiliatedVolunteer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	vol := pendingVolunteerFor(t, db, fix, ngo.ID, "v@example.com")

	r := httptest.NewRequest("POST", "/ngo/volunteers/"+vol.ID.Hex()+"/approve", nil)
	r = testutil.WithChiURLParam(testutil.AsUser(r, ngo), "id", vol.ID.Hex())
	w := httptest.NewRecorder()
	h.Approve(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	updated, err := userstore.New(db).GetByID(ctx, vol.ID)
	if err != nil {
		t.Fatalf("reload volunteer: %v", err)
	}
	if updated.ApprovalStatus != models.ApprovalApproved {
		t.Fatalf("expected approved volunteer, got %q", updated.ApprovalStatus)
	}

	ns, err := notificationstore.New(db).ListByUser(ctx, vol.ID, 0)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(ns) != 1 || ns[0].Type != models.NotifyApproval {
		t.Fatalf("expected APPROVAL notification, got %+v", ns)
	}
}

func TestDecide_ForeignVolunteerForbidden(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	other := fix.CreateNGO(ctx, "Green Earth", "ge@example.com")
	vol := pendingVolunteerFor(t, db, fix, other.ID, "v@example.com")

	r := httptest.NewRequest("POST", "/ngo/volunteers/"+vol.ID.Hex()+"/reject", nil)
	r = testutil.WithChiURLParam(testutil.AsUser(r, ngo), "id", vol.ID.Hex())
	w := httptest.NewRecorder()
	h.Reject(w, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	unchanged, err := userstore.New(db).GetByID(ctx, vol.ID)
	if err != nil {
		t.Fatalf("reload volunteer: %v", err)
	}
	if unchanged.ApprovalStatus != models.ApprovalPending {
		t.Fatalf("status must not change, got %q", unchanged.ApprovalStatus)
	}
}

func TestDecide_AlreadyDecided(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	vol := fix.CreateVolunteer(ctx, "Approved", "v@example.com", &ngo.ID) // already Approved

	r := httptest.NewRequest("POST", "/ngo/volunteers/"+vol.ID.Hex()+"/reject", nil)
	r = testutil.WithChiURLParam(testutil.AsUser(r, ngo), "id", vol.ID.Hex())
	w := httptest.NewRecorder()
	h.Reject(w, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for Approved->Rejected, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPendingVolunteers_ScopedToCaller(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	other := fix.CreateNGO(ctx, "Green Earth", "ge@example.com")
	pendingVolunteerFor(t, db, fix, ngo.ID, "mine@example.com")
	pendingVolunteerFor(t, db, fix, other.ID, "theirs@example.com")

	r := testutil.AsUser(httptest.NewRequest("GET", "/ngo/pending-volunteers", nil), ngo)
	w := httptest.NewRecorder()
	h.PendingVolunteers(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "mine@example.com") || strings.Contains(body, "theirs@example.com") {
		t.Fatalf("queue not scoped to caller: %s", body)
	}
}
