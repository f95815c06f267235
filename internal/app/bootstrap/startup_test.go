package bootstrap

import (
	"testing"

	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/domain/models"
	"github.com/volunhub/volunhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testAppCfg() AppConfig {
	return AppConfig{
		GovernmentEmail:    "reviewer@gov.test",
		GovernmentName:     "Review Board",
		GovernmentPassword: "first-login-password",
		BcryptCost:         bcrypt.MinCost,
	}
}

func TestEnsureGovernmentAccount_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{VolunHubMongoDatabase: db}
	cfg := testAppCfg()

	if err := ensureGovernmentAccount(ctx, deps, cfg, testLogger()); err != nil {
		t.Fatalf("ensureGovernmentAccount failed: %v", err)
	}

	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"email": "reviewer@gov.test"}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}

	if user.Role != models.RoleGovernment {
		t.Errorf("expected role %q, got %q", models.RoleGovernment, user.Role)
	}
	if user.ApprovalStatus != models.ApprovalApproved {
		t.Errorf("expected status %q, got %q", models.ApprovalApproved, user.ApprovalStatus)
	}
	if !user.IsApproved {
		t.Error("expected bootstrap account to be approved")
	}

	passwords := auth.NewPasswordServiceWithCost(bcrypt.MinCost)
	if !passwords.Verify(user.Password, cfg.GovernmentPassword) {
		t.Error("stored hash does not match the configured password")
	}
}

func TestEnsureGovernmentAccount_KeepsExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fix := testutil.NewFixtures(t, db)

	existing := fix.CreateGovernment(ctx, "Already Here", "reviewer@gov.test")

	deps := DBDeps{VolunHubMongoDatabase: db}

	if err := ensureGovernmentAccount(ctx, deps, testAppCfg(), testLogger()); err != nil {
		t.Fatalf("ensureGovernmentAccount failed: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": "reviewer@gov.test"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 account, got %d", n)
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&user); err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if user.Name != "Already Here" {
		t.Errorf("existing account was modified: name %q", user.Name)
	}
}

func TestEnsureGovernmentAccount_LeavesOtherRolesAlone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fix := testutil.NewFixtures(t, db)

	// A volunteer already registered with the configured email. Startup
	// must not promote it.
	fix.CreateVolunteer(ctx, "Squatter", "reviewer@gov.test", nil)

	deps := DBDeps{VolunHubMongoDatabase: db}

	if err := ensureGovernmentAccount(ctx, deps, testAppCfg(), testLogger()); err != nil {
		t.Fatalf("ensureGovernmentAccount failed: %v", err)
	}

	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"email": "reviewer@gov.test"}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if user.Role != models.RoleVolunteer {
		t.Errorf("expected role to stay %q, got %q", models.RoleVolunteer, user.Role)
	}
}
