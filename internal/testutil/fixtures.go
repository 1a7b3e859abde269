package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// FixturePassword is the plaintext password of every fixture user.
const FixturePassword = "password123"

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc models.Document) {
	f.t.Helper()
	doc.PrepareInsert(time.Now().UTC())
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s: %v", coll, err)
	}
}

// CreateUser creates an active user whose password is FixturePassword.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(FixturePassword), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hash fixture password: %v", err)
	}
	u := &models.User{
		FullName:       fullName,
		FullNameCI:     text.Fold(fullName),
		Email:          email,
		Role:           role,
		IsActive:       true,
		HashedPassword: string(hash),
	}
	f.insert(ctx, "users", u)
	return *u
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, models.RoleAdmin)
}

// CreateEditor creates a test editor user.
func (f *Fixtures) CreateEditor(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, models.RoleEditor)
}

// CreateDisabledUser creates a user with is_active=false.
func (f *Fixtures) CreateDisabledUser(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	u := f.CreateUser(ctx, fullName, email, models.RoleUser)
	if _, err := f.db.Collection("users").UpdateByID(ctx, u.ID, map[string]any{"$set": map[string]any{"is_active": false}}); err != nil {
		f.t.Fatalf("failed to disable test user: %v", err)
	}
	u.IsActive = false
	return u
}

// CreateEvent creates an upcoming event organized by organizer.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, organizer models.User) models.Event {
	f.t.Helper()
	e := &models.Event{
		Title:       title,
		Description: "Test event description",
		Date:        "2026-12-01",
		Time:        "18:00",
		Location:    "Community Hall",
		Capacity:    50,
		Category:    "Cultural",
		Organizer:   models.Organizer{ID: organizer.ID, Name: organizer.FullName},
	}
	f.insert(ctx, "events", e)
	return *e
}

// CreateArticle creates a published article written by author.
func (f *Fixtures) CreateArticle(ctx context.Context, title string, author models.User) models.Article {
	f.t.Helper()
	a := &models.Article{
		Title:   title,
		Excerpt: "Test excerpt",
		Content: "<p>Test content</p>",
		Tags:    []string{"community"},
		Author:  models.Author{ID: author.ID, Name: author.FullName, Avatar: author.Avatar},
	}
	f.insert(ctx, "articles", a)
	return *a
}

// CreateOpportunity creates an open volunteer opportunity with the given capacity.
func (f *Fixtures) CreateOpportunity(ctx context.Context, title string, capacity int, creator models.User) models.Opportunity {
	f.t.Helper()
	o := &models.Opportunity{
		Title:        title,
		Description:  "Test opportunity description",
		Requirements: []string{"Friendly attitude"},
		Category:     "Education",
		Location:     "Remote",
		Commitment:   "2 hours/week",
		Capacity:     capacity,
		CreatedBy:    creator.ID,
	}
	f.insert(ctx, "volunteer_opportunities", o)
	return *o
}

// CreateSponsor creates an active sponsor.
func (f *Fixtures) CreateSponsor(ctx context.Context, name, tier string, creator models.User) models.Sponsor {
	f.t.Helper()
	s := &models.Sponsor{
		Name:        name,
		Description: "Test sponsor",
		LogoURL:     "https://example.com/logo.png",
		WebsiteURL:  "https://example.com",
		Tier:        tier,
		Contact:     models.SponsorContact{Name: "Contact Person", Email: "contact@example.com"},
		CreatedBy:   creator.ID,
	}
	f.insert(ctx, "sponsors", s)
	return *s
}

// ObjectID is a convenience for tests that need a throwaway id.
func ObjectID() primitive.ObjectID { return primitive.NewObjectID() }
