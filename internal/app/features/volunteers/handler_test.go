package volunteers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/volunhub/volunhub/internal/app/features/volunteers"
	projectstore "github.com/volunhub/volunhub/internal/app/store/projects"
	"github.com/volunhub/volunhub/internal/domain/models"
	"github.com/volunhub/volunhub/internal/testutil"
	"go.uber.org/zap"
)

func TestProfile_ComputesContributionStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := volunteers.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	vol := fix.CreateVolunteer(ctx, "Asha", "asha@example.com", nil)

	// 3 days -> 24 hours; 36 hours spans two started days -> 16 hours.
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	fix.CreateCompletedProject(ctx, ngo.ID, vol.ID, start, start.Add(72*time.Hour))
	fix.CreateCompletedProject(ctx, ngo.ID, vol.ID, start, start.Add(36*time.Hour))

	// Open membership contributes nothing to the stats.
	open := fix.CreateProject(ctx, "Ongoing", ngo.ID, 5)
	if _, err := projectstore.New(db).Apply(ctx, open.ID, vol.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}

	r := httptest.NewRequest("GET", "/volunteers/profile", nil)
	r = testutil.AsUser(r, vol)
	w := httptest.NewRecorder()
	h.Profile(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Projects    []models.Project `json:"projects"`
		TotalHours  int              `json:"totalHours"`
		ImpactScore int              `json:"impactScore"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(resp.Projects))
	}
	if resp.TotalHours != 40 {
		t.Errorf("expected 40 total hours, got %d", resp.TotalHours)
	}
	if resp.ImpactScore != 20 {
		t.Errorf("expected impact score 20, got %d", resp.ImpactScore)
	}
}

func TestLeave_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := volunteers.NewHandler(db, zap.NewNop())
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ngo := fix.CreateNGO(ctx, "Helping Hands", "hh@example.com")
	vol := fix.CreateVolunteer(ctx, "Asha", "asha@example.com", nil)
	prj := fix.CreateProject(ctx, "Beach Cleanup", ngo.ID, 3)
	if _, err := store.Apply(ctx, prj.ID, vol.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}

	leave := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest("POST", "/volunteers/projects/"+prj.ID.Hex()+"/leave", nil)
		r = testutil.WithChiURLParam(testutil.AsUser(r, vol), "id", prj.ID.Hex())
		w := httptest.NewRecorder()
		h.Leave(w, r)
		return w
	}

	if w := leave(); w.Code != http.StatusOK {
		t.Fatalf("first leave: expected 200, got %d", w.Code)
	}
	if w := leave(); w.Code != http.StatusOK {
		t.Fatalf("second leave: expected 200, got %d", w.Code)
	}

	p, err := store.GetByID(ctx, prj.ID)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if p.CurrentVolunteers != 0 || len(p.Volunteers) != 0 {
		t.Fatalf("expected empty roster, got %+v", p)
	}
}

func TestUpdateProfile_SanitizesAndKeepsEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := volunteers.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vol := fix.CreateVolunteer(ctx, "Asha", "asha@example.com", nil)

	body := `{"name":"Asha <script>alert(1)</script>Rao","skills":["teaching","<b>first aid</b>"]}`
	r := httptest.NewRequest("PUT", "/volunteers/profile", strings.NewReader(body))
	r = testutil.AsUser(r, vol)
	w := httptest.NewRecorder()
	h.UpdateProfile(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.User
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if strings.Contains(updated.Name, "<script>") {
		t.Errorf("expected sanitized name, got %q", updated.Name)
	}
	if updated.Email != "asha@example.com" {
		t.Errorf("email must not change, got %q", updated.Email)
	}
}
