package articles_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/communityhub/internal/app/features/articles"
	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/communityhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*articles.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return articles.NewHandler(db, apierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func TestHandleCreate_SanitizesContent(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	body := map[string]any{
		"title":   "<b>Festival</b> notes",
		"content": `<p onclick="steal()">Hello</p><script>alert(1)</script>`,
		"tags":    []string{"culture", "culture", " food "},
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/articles/", body), editor)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	var got models.Article
	testutil.DecodeJSON(t, rec, &got)
	if got.Title != "Festival notes" {
		t.Errorf("Title = %q", got.Title)
	}
	if strings.Contains(got.Content, "script") || strings.Contains(got.Content, "onclick") {
		t.Errorf("content not sanitized: %q", got.Content)
	}
	if got.Excerpt != "Hello" {
		t.Errorf("Excerpt = %q, want derived from content", got.Excerpt)
	}
	if len(got.Tags) != 2 {
		t.Errorf("Tags = %v, want deduplicated", got.Tags)
	}
	if got.Author.ID != editor.ID {
		t.Errorf("author = %+v", got.Author)
	}
}

func TestHandleCreate_Forbidden(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateUser(ctx, "Member", "member@example.com", models.RoleUser)
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/articles/", map[string]any{"title": "x", "content": "y"}), member)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)
	testutil.AssertStatus(t, rec, http.StatusForbidden)
}

func TestServeGet_CountsViews(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	a := fx.CreateArticle(ctx, "Viewed", editor)

	var got models.Article
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeGet(rec, testutil.WithChiURLParam(httptest.NewRequest("GET", "/", nil), "id", a.ID.Hex()))
		testutil.AssertStatus(t, rec, http.StatusOK)
		testutil.DecodeJSON(t, rec, &got)
	}
	if got.ViewsCount != 2 {
		t.Errorf("ViewsCount = %d, want 2", got.ViewsCount)
	}

	rec := httptest.NewRecorder()
	h.ServeGet(rec, testutil.WithChiURLParam(httptest.NewRequest("GET", "/", nil), "id", primitive.NewObjectID().Hex()))
	testutil.AssertStatus(t, rec, http.StatusNotFound)
	if d := testutil.Detail(t, rec); d != "Article not found" {
		t.Errorf("detail = %q", d)
	}
}

func TestServeList_TagFilter(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	fx.CreateArticle(ctx, "Tagged", editor)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/articles/?tag=community", nil))
	testutil.AssertStatus(t, rec, http.StatusOK)
	var list []models.Article
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 1 {
		t.Errorf("expected 1 article, got %d", len(list))
	}

	rec = httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/articles/?skip=-1", nil))
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestHandleLike_Toggles(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := fx.CreateEditor(ctx, "Editor", "editor@example.com")
	reader := fx.CreateUser(ctx, "Reader", "reader@example.com", models.RoleUser)
	a := fx.CreateArticle(ctx, "Likeable", editor)

	like := func() (int, map[string]any) {
		req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("POST", "/", nil), reader), "id", a.ID.Hex())
		rec := httptest.NewRecorder()
		h.HandleLike(rec, req)
		var body map[string]any
		testutil.DecodeJSON(t, rec, &body)
		return rec.Code, body
	}

	code, body := like()
	if code != http.StatusOK || body["liked"] != true || body["likes_count"] != float64(1) {
		t.Errorf("first like: %d %v", code, body)
	}
	code, body = like()
	if code != http.StatusOK || body["liked"] != false || body["likes_count"] != float64(0) {
		t.Errorf("second like: %d %v", code, body)
	}
	if body["message"] != "Article unliked successfully" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestHandleUpdate_OwnerAndStranger(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fx.CreateUser(ctx, "Author", "author@example.com", models.RoleUser)
	stranger := fx.CreateUser(ctx, "Stranger", "stranger@example.com", models.RoleUser)
	a := fx.CreateArticle(ctx, "Mine", author)

	update := func(u models.User) *httptest.ResponseRecorder {
		req := testutil.NewJSONRequest(t, "PUT", "/", map[string]any{"title": "Edited"})
		req = testutil.WithChiURLParam(testutil.WithUser(req, u), "id", a.ID.Hex())
		rec := httptest.NewRecorder()
		h.HandleUpdate(rec, req)
		return rec
	}

	testutil.AssertStatus(t, update(stranger), http.StatusForbidden)
	testutil.AssertStatus(t, update(author), http.StatusOK)

	req := testutil.WithChiURLParam(testutil.WithUser(httptest.NewRequest("DELETE", "/", nil), stranger), "id", a.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)
	testutil.AssertStatus(t, rec, http.StatusForbidden)
}
