package users_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/users"
	"github.com/dalemusser/communityhub/internal/app/store/audit"
	"github.com/dalemusser/communityhub/internal/app/system/auditlog"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/communityhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type env struct {
	h      *users.Handler
	fx     *testutil.Fixtures
	audits *audit.Store
}

func newEnv(t *testing.T) env {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	store := audit.New(db)
	al := auditlog.New(store, logger, auditlog.Config{Auth: auditlog.DB, Admin: auditlog.DB})
	return env{
		h:      users.NewHandler(db, al, apierrors.NewErrorLogger(logger), logger),
		fx:     testutil.NewFixtures(t, db),
		audits: store,
	}
}

func withID(r *http.Request, u models.User, id primitive.ObjectID) *http.Request {
	return testutil.WithChiURLParam(testutil.WithUser(r, u), "id", id.Hex())
}

func TestServeList_AdminOnly(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := e.fx.CreateAdmin(ctx, "Admin", "admin@example.com")
	u := e.fx.CreateUser(ctx, "User", "user@example.com", models.RoleUser)

	rec := httptest.NewRecorder()
	e.h.ServeList(rec, testutil.WithUser(httptest.NewRequest("GET", "/users/", nil), u))
	testutil.AssertStatus(t, rec, http.StatusForbidden)
	if got := testutil.Detail(t, rec); got != "Not enough permissions" {
		t.Errorf("detail = %q", got)
	}

	rec = httptest.NewRecorder()
	e.h.ServeList(rec, testutil.WithUser(httptest.NewRequest("GET", "/users/?limit=1", nil), admin))
	testutil.AssertStatus(t, rec, http.StatusOK)
	var list []models.User
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 1 {
		t.Errorf("limit=1 returned %d users", len(list))
	}
}

func TestServeGet_SelfOrAdmin(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := e.fx.CreateAdmin(ctx, "Admin", "admin@example.com")
	a := e.fx.CreateUser(ctx, "A", "a@example.com", models.RoleUser)
	b := e.fx.CreateUser(ctx, "B", "b@example.com", models.RoleUser)

	get := func(caller models.User, id primitive.ObjectID) int {
		rec := httptest.NewRecorder()
		e.h.ServeGet(rec, withID(httptest.NewRequest("GET", "/", nil), caller, id))
		return rec.Code
	}
	if c := get(a, a.ID); c != http.StatusOK {
		t.Errorf("self get = %d", c)
	}
	if c := get(a, b.ID); c != http.StatusForbidden {
		t.Errorf("other get = %d", c)
	}
	if c := get(admin, b.ID); c != http.StatusOK {
		t.Errorf("admin get = %d", c)
	}
	if c := get(admin, primitive.NewObjectID()); c != http.StatusNotFound {
		t.Errorf("missing get = %d", c)
	}
}

func TestHandleUpdate_SelfCannotEscalate(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := e.fx.CreateUser(ctx, "Self", "self@example.com", models.RoleUser)

	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, "PUT", "/", map[string]any{"role": "admin"})
	e.h.HandleUpdate(rec, withID(req, u, u.ID))
	testutil.AssertStatus(t, rec, http.StatusForbidden)

	rec = httptest.NewRecorder()
	req = testutil.NewJSONRequest(t, "PUT", "/", map[string]any{"bio": "<b>Hello</b> there", "location": "Kathmandu"})
	e.h.HandleUpdate(rec, withID(req, u, u.ID))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var got models.User
	testutil.DecodeJSON(t, rec, &got)
	if got.Bio != "Hello there" || got.Location != "Kathmandu" || got.Role != models.RoleUser {
		t.Errorf("unexpected user: %+v", got)
	}

	n, err := e.audits.Count(ctx, audit.QueryFilter{EventType: audit.EventUserUpdated})
	if err != nil || n != 1 {
		t.Errorf("user_updated audits = %d, %v", n, err)
	}
}

func TestHandleUpdate_AdminChangesRole(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := e.fx.CreateAdmin(ctx, "Admin", "admin@example.com")
	u := e.fx.CreateUser(ctx, "U", "u@example.com", models.RoleUser)

	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, "PUT", "/", map[string]any{"role": "Editor", "is_active": false})
	e.h.HandleUpdate(rec, withID(req, admin, u.ID))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var got models.User
	testutil.DecodeJSON(t, rec, &got)
	if got.Role != models.RoleEditor || got.IsActive {
		t.Errorf("unexpected user: %+v", got)
	}
	n, _ := e.audits.Count(ctx, audit.QueryFilter{EventType: audit.EventUserRoleChanged})
	if n != 1 {
		t.Errorf("role change audits = %d, want 1", n)
	}
}

func TestHandleDelete(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := e.fx.CreateAdmin(ctx, "Admin", "admin@example.com")
	u := e.fx.CreateUser(ctx, "U", "u@example.com", models.RoleUser)

	rec := httptest.NewRecorder()
	e.h.HandleDelete(rec, withID(httptest.NewRequest("DELETE", "/", nil), u, u.ID))
	testutil.AssertStatus(t, rec, http.StatusForbidden)

	rec = httptest.NewRecorder()
	e.h.HandleDelete(rec, withID(httptest.NewRequest("DELETE", "/", nil), admin, u.ID))
	testutil.AssertStatus(t, rec, http.StatusOK)

	n, _ := e.fx.DB().Collection("users").CountDocuments(ctx, bson.M{"_id": u.ID})
	if n != 0 {
		t.Error("user still present after delete")
	}
	events, err := e.audits.GetByUser(ctx, u.ID, 10)
	if err != nil || len(events) != 1 || events[0].EventType != audit.EventUserDeleted {
		t.Errorf("audit events = %+v, %v", events, err)
	}

	rec = httptest.NewRecorder()
	e.h.HandleDelete(rec, withID(httptest.NewRequest("DELETE", "/", nil), admin, u.ID))
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestHandleSetRole(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := e.fx.CreateEditor(ctx, "Editor", "editor@example.com")
	target := e.fx.CreateUser(ctx, "T", "t@example.com", models.RoleUser)

	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, "PUT", "/", map[string]any{"role": "editor"})
	e.h.HandleSetRole(rec, withID(req, editor, target.ID))
	testutil.AssertStatus(t, rec, http.StatusForbidden)

	// a superuser who is not an admin may still change roles
	super := editor
	super.IsSuperuser = true
	rec = httptest.NewRecorder()
	e.h.HandleSetRole(rec, withID(httptest.NewRequest("PUT", "/?role=editor", nil), super, target.ID))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var body struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &body)
	if body.Message != "User role updated to editor" {
		t.Errorf("message = %q", body.Message)
	}

	rec = httptest.NewRecorder()
	req = testutil.NewJSONRequest(t, "PUT", "/", map[string]any{"role": "overlord"})
	e.h.HandleSetRole(rec, withID(req, super, target.ID))
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestMalformedID(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	admin := e.fx.CreateAdmin(ctx, "Admin", "admin@example.com")

	req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("GET", "/", nil), admin), "id", "xyz")
	rec := httptest.NewRecorder()
	e.h.ServeGet(rec, req)
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
}
