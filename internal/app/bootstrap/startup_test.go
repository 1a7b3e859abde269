package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/communityhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func adminConfig() AppConfig {
	return AppConfig{
		AdminEmail:    "admin@globalnepali.org",
		AdminPassword: "admin-password",
		AdminFullName: "Admin User",
		BcryptCost:    bcrypt.MinCost,
	}
}

func TestEnsureAdmin_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := ensureAdmin(ctx, DBDeps{MongoDatabase: db}, adminConfig(), testLogger())
	if err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var stored models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": u.ID}).Decode(&stored); err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}
	if stored.Role != models.RoleAdmin || !stored.IsSuperuser || !stored.IsActive {
		t.Errorf("unexpected admin: %+v", stored)
	}
	if !auth.CheckPassword("admin-password", stored.HashedPassword) {
		t.Error("admin password was not stored as a matching digest")
	}
}

func TestEnsureAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	existing := fx.CreateDisabledUser(ctx, "Existing", "admin@globalnepali.org")

	u, err := ensureAdmin(ctx, DBDeps{MongoDatabase: db}, adminConfig(), testLogger())
	if err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}
	if u.ID != existing.ID {
		t.Fatalf("expected existing user to be promoted, got new id %s", u.ID.Hex())
	}
	if u.Role != models.RoleAdmin || !u.IsSuperuser || !u.IsActive {
		t.Errorf("unexpected promoted user: %+v", u)
	}
	if !auth.CheckPassword(testutil.FixturePassword, u.HashedPassword) {
		t.Error("promotion must keep the existing password")
	}

	n, _ := db.Collection("users").CountDocuments(ctx, bson.M{})
	if n != 1 {
		t.Errorf("expected 1 user, got %d", n)
	}
}

func TestStartup_SeedsOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := adminConfig()
	cfg.SeedDemoData = true
	deps := DBDeps{MongoDatabase: db}

	for i := 0; i < 2; i++ {
		if err := Startup(ctx, nil, cfg, deps, testLogger()); err != nil {
			t.Fatalf("Startup #%d failed: %v", i+1, err)
		}
	}

	want := map[string]int64{
		"users":                   1 + demoUsers,
		"events":                  demoEvents,
		"articles":                demoArticles,
		"volunteer_opportunities": demoOpportunities,
		"sponsors":                4,
	}
	for coll, n := range want {
		got, err := db.Collection(coll).CountDocuments(ctx, bson.M{})
		if err != nil {
			t.Fatalf("count %s: %v", coll, err)
		}
		if got != n {
			t.Errorf("%s: got %d documents, want %d", coll, got, n)
		}
	}
}

func TestStartup_SeedWithoutAdminSkips(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := Startup(ctx, nil, AppConfig{SeedDemoData: true}, DBDeps{MongoDatabase: db}, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}
	n, _ := db.Collection("events").CountDocuments(ctx, bson.M{})
	if n != 0 {
		t.Errorf("expected no seeded events without an admin, got %d", n)
	}
}

func TestStartup_SeedBoundByLongTimeout(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	t.Cleanup(timeouts.Reset)

	core, logs := observer.New(zap.WarnLevel)
	cfg := adminConfig()
	cfg.SeedDemoData = true
	cfg.TimeoutLong = time.Nanosecond

	err := Startup(ctx, nil, cfg, DBDeps{MongoDatabase: db}, zap.New(core))
	if err == nil {
		t.Fatal("expected seeding to fail once the long deadline passed")
	}
	if logs.FilterMessage("operation timed out").FilterField(zap.String("operation", "seed demo data")).Len() != 1 {
		t.Errorf("expected a timeout warning for seeding, got %d entries", logs.Len())
	}
}
