package userstore

import (
	"context"

	"github.com/dalemusser/communityhub/internal/app/store/docstore"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fetcher implements auth.UserFetcher so every authenticated request sees
// the account as it is now (role changes and deactivation apply at once).
type Fetcher struct {
	docs *docstore.Collection[models.User]
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{docs: docstore.New[models.User](db, Collection)}
}

// FetchUser loads a user by id. Returns models.ErrNotFound when missing;
// callers decide what an inactive account means.
func (f *Fetcher) FetchUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	return f.docs.FindByID(ctx, id)
}
