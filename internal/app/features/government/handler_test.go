package government_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/volunhub/volunhub/internal/app/features/government"
	"github.com/volunhub/volunhub/internal/app/store/audit"
	"github.com/volunhub/volunhub/internal/domain/models"
	"github.com/volunhub/volunhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestPendingNGOs_ListsOnlyPendingWithDetail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := government.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pending := fix.CreateUser(ctx, "Helping Hands", "hh@example.com", models.RoleNGO, models.ApprovalPending)
	fix.CreateNGOProfile(ctx, pending.ID, "Helping Hands", "org@example.com", "NGO-1234")
	fix.CreateNGO(ctx, "Green Earth", "ge@example.com") // already approved
	fix.CreateUser(ctx, "Waiting Vol", "wv@example.com", models.RoleVolunteer, models.ApprovalPending)

	r := testutil.AsRole(httptest.NewRequest("GET", "/government/pending-ngos", nil), models.RoleGovernment)
	w := httptest.NewRecorder()
	h.PendingNGOs(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		NGOs []struct {
			User    models.User        `json:"user"`
			Profile *models.NGOProfile `json:"profile"`
		} `json:"ngos"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.NGOs) != 1 {
		t.Fatalf("expected exactly the pending NGO, got %+v", resp)
	}
	if resp.NGOs[0].User.Email != "hh@example.com" {
		t.Errorf("unexpected user: %+v", resp.NGOs[0].User)
	}
	if resp.NGOs[0].Profile == nil || resp.NGOs[0].Profile.RegistrationNumber != "NGO-1234" {
		t.Errorf("expected profile detail, got %+v", resp.NGOs[0].Profile)
	}
}

func TestApprovalStats_CountsByRoleAndStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := government.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix.CreateUser(ctx, "P1", "p1@example.com", models.RoleNGO, models.ApprovalPending)
	fix.CreateUser(ctx, "P2", "p2@example.com", models.RoleNGO, models.ApprovalPending)
	fix.CreateNGO(ctx, "A1", "a1@example.com")
	fix.CreateUser(ctx, "R1", "r1@example.com", models.RoleNGO, models.ApprovalRejected)
	fix.CreateVolunteer(ctx, "V1", "v1@example.com", nil)

	r := testutil.AsRole(httptest.NewRequest("GET", "/government/approval-stats", nil), models.RoleGovernment)
	w := httptest.NewRecorder()
	h.ApprovalStats(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		NGOs struct {
			Pending  int64 `json:"pending"`
			Approved int64 `json:"approved"`
			Rejected int64 `json:"rejected"`
		} `json:"ngos"`
		Volunteers struct {
			Pending  int64 `json:"pending"`
			Approved int64 `json:"approved"`
			Rejected int64 `json:"rejected"`
		} `json:"volunteers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.NGOs.Pending != 2 || resp.NGOs.Approved != 1 || resp.NGOs.Rejected != 1 {
		t.Errorf("unexpected NGO stats: %+v", resp.NGOs)
	}
	if resp.Volunteers.Approved != 1 {
		t.Errorf("unexpected volunteer stats: %+v", resp.Volunteers)
	}
}

func TestAuditTrail_ListsAndFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := government.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := audit.New(db)
	actor := primitive.NewObjectID()
	target := primitive.NewObjectID()
	seed := []audit.Event{
		{Category: audit.CategoryDecision, EventType: audit.EventNGOApproved, ActorID: actor, ActorRole: models.RoleGovernment, TargetID: &target},
		{Category: audit.CategoryAdmin, EventType: audit.EventProjectDeleted, ActorID: actor, ActorRole: models.RoleNGO, TargetID: &target},
	}
	for _, e := range seed {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("seed audit event: %v", err)
		}
	}

	r := testutil.AsRole(httptest.NewRequest("GET", "/government/audit", nil), models.RoleGovernment)
	w := httptest.NewRecorder()
	h.AuditTrail(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Events []audit.Event `json:"events"`
		Total  int           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected 2 events, got %d", resp.Total)
	}

	r = testutil.AsRole(httptest.NewRequest("GET", "/government/audit?category=decision", nil), models.RoleGovernment)
	w = httptest.NewRecorder()
	h.AuditTrail(w, r)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode filtered response: %v", err)
	}
	if resp.Total != 1 || resp.Events[0].EventType != audit.EventNGOApproved {
		t.Fatalf("expected only the decision event, got %+v", resp)
	}

	r = testutil.AsRole(httptest.NewRequest("GET", "/government/audit?limit=bogus", nil), models.RoleGovernment)
	w = httptest.NewRecorder()
	h.AuditTrail(w, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", w.Code)
	}
}
