package events_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/events"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/communityhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newHandler(t *testing.T) (*events.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return events.NewHandler(db, apierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func validEvent() map[string]any {
	return map[string]any{
		"title":       "Tihar Celebration",
		"description": "Lights and food",
		"date":        "2026-11-08",
		"time":        "17:00",
		"location":    "Town Hall",
		"capacity":    100,
		"category":    "Cultural",
	}
}

func TestHandleCreate(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	member := fx.CreateUser(ctx, "Member", "member@example.com", models.RoleUser)

	t.Run("editor creates", func(t *testing.T) {
		req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/events/", validEvent()), editor)
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, req)

		testutil.AssertStatus(t, rec, http.StatusOK)
		var got models.Event
		testutil.DecodeJSON(t, rec, &got)
		if got.ID.IsZero() || got.Organizer.ID != editor.ID || got.Organizer.Name != "Editor" {
			t.Errorf("unexpected event: %+v", got)
		}
		if got.Status != models.EventStatusUpcoming || got.RegisteredCount != 0 {
			t.Errorf("defaults not applied: %+v", got)
		}
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/events/", validEvent()), member)
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, req)

		testutil.AssertStatus(t, rec, http.StatusForbidden)
		if d := testutil.Detail(t, rec); d != "Not enough permissions" {
			t.Errorf("detail = %q", d)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		body := validEvent()
		delete(body, "title")
		body["date"] = "next tuesday"
		req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/events/", body), editor)
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, req)

		testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
		var resp apierrors.Body
		testutil.DecodeJSON(t, rec, &resp)
		if resp.Errors["title"] == "" || resp.Errors["date"] == "" {
			t.Errorf("expected title and date errors, got %v", resp.Errors)
		}
	})
}

func TestServeList(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	fx.CreateEvent(ctx, "One", editor)
	fx.CreateEvent(ctx, "Two", editor)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/events/?limit=1", nil))
	testutil.AssertStatus(t, rec, http.StatusOK)
	var list []models.Event
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 1 {
		t.Errorf("expected 1 event with limit=1, got %d", len(list))
	}

	rec = httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/events/?category=Sports", nil))
	testutil.AssertStatus(t, rec, http.StatusOK)
	if rec.Body.String() != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/events/?limit=500", nil))
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestServeList_MediumDeadlineLogged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(timeouts.Reset)
	timeouts.Configure(timeouts.Config{Medium: time.Nanosecond})

	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)
	h := events.NewHandler(db, apierrors.NewErrorLogger(logger), logger)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/events/", nil))

	testutil.AssertStatus(t, rec, http.StatusInternalServerError)
	if logs.FilterMessage("operation timed out").FilterField(zap.String("operation", "list events")).Len() != 1 {
		t.Errorf("expected a timeout warning for the list, got %d entries", logs.Len())
	}
}

func TestServeGet(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	e := fx.CreateEvent(ctx, "Visible", editor)

	rec := httptest.NewRecorder()
	h.ServeGet(rec, testutil.WithChiURLParam(httptest.NewRequest("GET", "/", nil), "id", e.ID.Hex()))
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = httptest.NewRecorder()
	h.ServeGet(rec, testutil.WithChiURLParam(httptest.NewRequest("GET", "/", nil), "id", primitive.NewObjectID().Hex()))
	testutil.AssertStatus(t, rec, http.StatusNotFound)
	if d := testutil.Detail(t, rec); d != "Event not found" {
		t.Errorf("detail = %q", d)
	}

	rec = httptest.NewRecorder()
	h.ServeGet(rec, testutil.WithChiURLParam(httptest.NewRequest("GET", "/", nil), "id", "not-an-id"))
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestHandleUpdate_Permissions(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	owner := fx.CreateUser(ctx, "Owner", "owner@example.com", models.RoleUser)
	stranger := fx.CreateUser(ctx, "Stranger", "stranger@example.com", models.RoleUser)
	e := fx.CreateEvent(ctx, "Owned", owner)

	update := func(u models.User, id string) *httptest.ResponseRecorder {
		req := testutil.NewJSONRequest(t, "PUT", "/events/"+id, map[string]any{"title": "Renamed"})
		req = testutil.WithChiURLParam(testutil.WithUser(req, u), "id", id)
		rec := httptest.NewRecorder()
		h.HandleUpdate(rec, req)
		return rec
	}

	testutil.AssertStatus(t, update(stranger, e.ID.Hex()), http.StatusForbidden)
	testutil.AssertStatus(t, update(stranger, primitive.NewObjectID().Hex()), http.StatusNotFound)

	rec := update(owner, e.ID.Hex())
	testutil.AssertStatus(t, rec, http.StatusOK)
	var got models.Event
	testutil.DecodeJSON(t, rec, &got)
	if got.Title != "Renamed" || got.Location != e.Location {
		t.Errorf("partial merge failed: %+v", got)
	}

	testutil.AssertStatus(t, update(editor, e.ID.Hex()), http.StatusOK)
}

func TestHandleDelete(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateAdmin(ctx, "Admin", "admin@example.com")
	e := fx.CreateEvent(ctx, "Doomed", admin)

	req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("DELETE", "/", nil), admin), "id", e.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)
	testutil.AssertStatus(t, rec, http.StatusOK)

	n, _ := fx.DB().Collection("events").CountDocuments(ctx, map[string]any{"_id": e.ID})
	if n != 0 {
		t.Error("event still stored after delete")
	}
}

func TestHandleRegister_Twice(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	member := fx.CreateUser(ctx, "Member", "member@example.com", models.RoleUser)
	e := fx.CreateEvent(ctx, "Meetup", editor)

	register := func() *httptest.ResponseRecorder {
		req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("POST", "/", nil), member), "id", e.ID.Hex())
		rec := httptest.NewRecorder()
		h.HandleRegister(rec, req)
		return rec
	}

	testutil.AssertStatus(t, register(), http.StatusOK)
	rec := register()
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	if d := testutil.Detail(t, rec); d != "Already registered for this event" {
		t.Errorf("detail = %q", d)
	}

	var stored models.Event
	if err := fx.DB().Collection("events").FindOne(ctx, map[string]any{"_id": e.ID}).Decode(&stored); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.RegisteredCount != 1 || len(stored.Registrations) != 1 {
		t.Errorf("count=%d len=%d, want 1/1", stored.RegisteredCount, len(stored.Registrations))
	}
}
