package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/communityhub/internal/app/store/audit"
	"github.com/dalemusser/communityhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Log(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	err := store.Log(ctx, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		UserID:    &userID,
		IP:        "192.168.1.1",
		UserAgent: "TestBrowser/1.0",
		Success:   true,
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := store.GetByUser(ctx, userID, 10)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID.IsZero() {
		t.Error("expected ID to be generated")
	}
	if events[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestStore_Query_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Now().UTC().Add(-time.Hour)
	for i, et := range []string{audit.EventLoginSuccess, audit.EventLoginFailedWrongPassword, audit.EventUserDeleted} {
		cat := audit.CategoryAuth
		if et == audit.EventUserDeleted {
			cat = audit.CategoryAdmin
		}
		if err := store.Log(ctx, audit.Event{
			Category:  cat,
			EventType: et,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	auth, err := store.Query(ctx, audit.QueryFilter{Category: audit.CategoryAuth})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(auth) != 2 {
		t.Errorf("auth events = %d, want 2", len(auth))
	}
	if len(auth) == 2 && auth[0].EventType != audit.EventLoginFailedWrongPassword {
		t.Errorf("expected newest first, got %q", auth[0].EventType)
	}

	n, err := store.Count(ctx, audit.QueryFilter{EventType: audit.EventUserDeleted})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	since := base.Add(90 * time.Second)
	recent, err := store.Query(ctx, audit.QueryFilter{StartTime: &since})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("events since = %d, want 1", len(recent))
	}
}
