package projects_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/features/projects"
	notificationstore "github.com/volunhub/volunhub/internal/app/store/notifications"
	projectstore "github.com/volunhub/volunhub/internal/app/store/projects"
	"github.com/volunhub/volunhub/internal/app/system/notify"
	"github.com/volunhub/volunhub/internal/domain/models"
	"github.com/volunhub/volunhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, db *mongo.Database) *projects.Handler {
	t.Helper()
	dispatcher := notify.NewDispatcher(notificationstore.New(db), zap.NewNop())
	return projects.NewHandler(db, dispatcher, zap.NewNop())
}

func TestCreate_RequiresApprovedNGO(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pending := fix.CreateUser(ctx, "Helping Hands", "hh@example.com", models.RoleNGO, models.ApprovalPending)
	body := `{"title":"Beach Cleanup","description":"Plastic removal","maxVolunteers":5}`

	r := httptest.NewRequest("POST", "/projects", strings.NewReader(body))
	r = testutil.AsUser(r, pending)
	w := httptest.NewRecorder()
	h.Create(w, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for pending NGO, got %d", w.Code)
	}

	approved := fix.CreateNGO(ctx, "Green Earth", "ge@example.com")
	r = httptest.NewRequest("POST", "/projects", strings.NewReader(body))
	r = testutil.AsUser(r, approved)
	w = httptest.NewRecorder()
	h.Create(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Project
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != models.ProjectOpen || created.NGOID != approved.ID {
		t.Fatalf("unexpected project: %+v", created)
	}
}

func TestApply_VolunteerOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	prj := fix.CreateProject(ctx, "Beach Cleanup", ngo.ID, 3)

	r := httptest.NewRequest("POST", "/projects/"+prj.ID.Hex()+"/apply", nil)
	r = testutil.WithChiURLParam(testutil.AsUser(r, ngo), "id", prj.ID.Hex())
	w := httptest.NewRecorder()
	h.Apply(w, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for NGO applicant, got %d", w.Code)
	}
}

func TestApply_NotifiesOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	vol := fix.CreateVolunteer(ctx, "Asha", "asha@example.com", nil)
	prj := fix.CreateProject(ctx, "Beach Cleanup", ngo.ID, 3)

	r := httptest.NewRequest("POST", "/projects/"+prj.ID.Hex()+"/apply", nil)
	r = testutil.WithChiURLParam(testutil.AsUser(r, vol), "id", prj.ID.Hex())
	w := httptest.NewRecorder()
	h.Apply(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	ns, err := notificationstore.New(db).ListByUser(ctx, ngo.ID, 0)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(ns) != 1 || !strings.Contains(ns[0].Message, "Asha") {
		t.Fatalf("expected owner notification naming the volunteer, got %+v", ns)
	}
}

// Two-seat project: A applies (1/2, Open), B applies (2/2, Closed), A
// leaves (1/2, still Closed).
func TestMembership_EndToEnd(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	a := fix.CreateVolunteer(ctx, "A", "a@example.com", nil)
	b := fix.CreateVolunteer(ctx, "B", "b@example.com", nil)
	prj := fix.CreateProject(ctx, "Two Seats", ngo.ID, 2)

	apply := func(vol models.User) *httptest.ResponseRecorder {
		r := httptest.NewRequest("POST", "/projects/"+prj.ID.Hex()+"/apply", nil)
		r = testutil.WithChiURLParam(testutil.AsUser(r, vol), "id", prj.ID.Hex())
		w := httptest.NewRecorder()
		h.Apply(w, r)
		return w
	}

	if w := apply(a); w.Code != http.StatusOK {
		t.Fatalf("A apply: expected 200, got %d", w.Code)
	}
	p, _ := store.GetByID(ctx, prj.ID)
	if p.CurrentVolunteers != 1 || p.Status != models.ProjectOpen {
		t.Fatalf("after A: %+v", p)
	}

	if w := apply(b); w.Code != http.StatusOK {
		t.Fatalf("B apply: expected 200, got %d", w.Code)
	}
	p, _ = store.GetByID(ctx, prj.ID)
	if p.CurrentVolunteers != 2 || p.Status != models.ProjectClosed {
		t.Fatalf("after B: %+v", p)
	}

	if _, err := store.Leave(ctx, prj.ID, a.ID); err != nil {
		t.Fatalf("A leave: %v", err)
	}
	p, _ = store.GetByID(ctx, prj.ID)
	if p.CurrentVolunteers != 1 || p.Status != models.ProjectClosed {
		t.Fatalf("after A leaves: %+v", p)
	}
}

func TestMountRoutes_ReadsArePublic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Green Earth", "ge@example.com")
	prj := fix.CreateProject(ctx, "Beach Cleanup", ngo.ID, 5)

	router := chi.NewRouter()
	router.Route("/projects", func(r chi.Router) {
		h.MountRoutes(r, testutil.NewAuthManager(t))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/projects", nil))
	if w.Code != http.StatusOK {
		t.Errorf("anonymous list: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/projects/"+prj.ID.Hex(), nil))
	if w.Code != http.StatusOK {
		t.Errorf("anonymous get: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/projects", strings.NewReader(`{"title":"x"}`)))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous create: status = %d, want 401", w.Code)
	}
}

func TestUpdate_OwnerOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	intruder := fix.CreateNGO(ctx, "Green Earth", "ge@example.com")
	prj := fix.CreateProject(ctx, "Beach Cleanup", owner.ID, 3)

	body := `{"title":"Hijacked","description":"x","status":"Open"}`
	r := httptest.NewRequest("PUT", "/projects/"+prj.ID.Hex(), strings.NewReader(body))
	r = testutil.WithChiURLParam(testutil.AsUser(r, intruder), "id", prj.ID.Hex())
	w := httptest.NewRecorder()
	h.Update(w, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign NGO, got %d", w.Code)
	}

	body = `{"title":"River Cleanup","description":"Moved","status":"Completed"}`
	r = httptest.NewRequest("PUT", "/projects/"+prj.ID.Hex(), strings.NewReader(body))
	r = testutil.WithChiURLParam(testutil.AsUser(r, owner), "id", prj.ID.Hex())
	w = httptest.NewRecorder()
	h.Update(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	p, err := projectstore.New(db).GetByID(ctx, prj.ID)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if p.Title != "River Cleanup" || p.Status != models.ProjectCompleted {
		t.Fatalf("unexpected project after update: %+v", p)
	}
}

func TestDelete_GovernmentMayRemoveAny(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := newHandler(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	gov := fix.CreateGovernment(ctx, "Official", "gov@example.com")
	prj := fix.CreateProject(ctx, "Beach Cleanup", owner.ID, 3)

	r := httptest.NewRequest("DELETE", "/projects/"+prj.ID.Hex(), nil)
	r = testutil.WithChiURLParam(testutil.AsUser(r, gov), "id", prj.ID.Hex())
	w := httptest.NewRecorder()
	h.Delete(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if _, err := projectstore.New(db).GetByID(ctx, prj.ID); err == nil {
		t.Fatal("expected project to be gone")
	}
}
