package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/communityhub/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func newServer(t *testing.T) (*httptest.Server, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cfg := validConfig()
	cfg.BcryptCost = bcrypt.MinCost
	cfg.CORSAllowedOrigins = []string{"http://localhost:5173"}

	h, err := BuildHandler(nil, cfg, DBDeps{MongoClient: db.Client(), MongoDatabase: db}, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, testutil.NewFixtures(t, db)
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()
	var out bytes.Buffer
	_, _ = out.ReadFrom(res.Body)
	return res, out.Bytes()
}

func login(t *testing.T, srv *httptest.Server, email, password string) string {
	t.Helper()
	form := url.Values{"username": {email}, "password": {password}}
	res, err := srv.Client().Post(srv.URL+"/api/v1/auth/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", res.StatusCode)
	}
	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return body.AccessToken
}

func TestEndToEnd_RegisterLoginEventRegistration(t *testing.T) {
	srv, fx := newServer(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	res, _ := call(t, srv, "POST", "/api/v1/auth/register", "", map[string]any{
		"email":     "member@example.com",
		"password":  "member-pass",
		"full_name": "Member",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("register status = %d", res.StatusCode)
	}
	memberTok := login(t, srv, "member@example.com", "member-pass")

	res, body := call(t, srv, "GET", "/api/v1/auth/me", memberTok, nil)
	if res.StatusCode != http.StatusOK || !bytes.Contains(body, []byte("member@example.com")) {
		t.Fatalf("me = %d %s", res.StatusCode, body)
	}

	fx.CreateEditor(ctx, "Editor", "editor@example.com")
	editorTok := login(t, srv, "editor@example.com", testutil.FixturePassword)

	res, body = call(t, srv, "POST", "/api/v1/events/", editorTok, map[string]any{
		"title":       "Teej",
		"description": "Festival gathering",
		"date":        time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"time":        "17:00",
		"location":    "Community hall",
		"capacity":    100,
		"category":    "Cultural",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("create event = %d %s", res.StatusCode, body)
	}
	var ev models.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}

	path := "/api/v1/events/" + ev.ID.Hex() + "/register"
	if res, body := call(t, srv, "POST", path, memberTok, nil); res.StatusCode != http.StatusOK {
		t.Fatalf("first register = %d %s", res.StatusCode, body)
	}
	res, body = call(t, srv, "POST", path, memberTok, nil)
	if res.StatusCode != http.StatusBadRequest || !bytes.Contains(body, []byte("Already registered for this event")) {
		t.Fatalf("second register = %d %s", res.StatusCode, body)
	}

	res, body = call(t, srv, "GET", "/api/v1/events/"+ev.ID.Hex(), "", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get event = %d", res.StatusCode)
	}
	if err := json.Unmarshal(body, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.RegisteredCount != 1 || len(ev.Registrations) != 1 {
		t.Errorf("registered_count = %d, registrations = %d", ev.RegisteredCount, len(ev.Registrations))
	}
}

func TestRouter_AuthAndErrors(t *testing.T) {
	srv, fx := newServer(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if res, _ := call(t, srv, "GET", "/api/v1/users/", "", nil); res.StatusCode != http.StatusUnauthorized {
		t.Errorf("users without token = %d", res.StatusCode)
	}
	if res, _ := call(t, srv, "GET", "/api/v1/events/not-an-id", "", nil); res.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("malformed id = %d", res.StatusCode)
	}
	if res, _ := call(t, srv, "GET", "/api/v1/nothing-here", "", nil); res.StatusCode != http.StatusNotFound {
		t.Errorf("unknown route = %d", res.StatusCode)
	}

	off := fx.CreateUser(ctx, "Soon Off", "off@example.com", models.RoleUser)
	tok := login(t, srv, off.Email, testutil.FixturePassword)
	if _, err := fx.DB().Collection("users").UpdateByID(ctx, off.ID, map[string]any{"$set": map[string]any{"is_active": false}}); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if res, _ := call(t, srv, "GET", "/api/v1/auth/me", tok, nil); res.StatusCode != http.StatusUnauthorized {
		t.Errorf("disabled account token = %d, want 401", res.StatusCode)
	}
}

func TestRouter_HealthAndRoot(t *testing.T) {
	srv, _ := newServer(t)
	if res, _ := call(t, srv, "GET", "/health", "", nil); res.StatusCode != http.StatusOK {
		t.Errorf("health = %d", res.StatusCode)
	}
	res, body := call(t, srv, "GET", "/", "", nil)
	if res.StatusCode != http.StatusOK || !bytes.Contains(body, []byte("Welcome")) {
		t.Errorf("root = %d %s", res.StatusCode, body)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv, _ := newServer(t)
	req, _ := http.NewRequest("OPTIONS", srv.URL+"/api/v1/events/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	res.Body.Close()
	if got := res.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
