// Package docstore is the typed gateway every resource store goes through to
// reach MongoDB. It owns identity/timestamp assignment on insert, the
// updated_at bump on partial updates, and the mapping of driver errors onto
// models.ErrNotFound and ErrDuplicate.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/communityhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicate wraps unique-index violations. Stores translate it into the
// domain conflict that applies to them.
var ErrDuplicate = errors.New("duplicate key")

// ListOptions is a skip/limit window plus sort order for Find.
// A zero Limit means no limit.
type ListOptions struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

// Collection is a typed view over one MongoDB collection.
type Collection[T any] struct {
	c   *mongo.Collection
	now func() time.Time
}

// New returns a Collection over db.<name>.
func New[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{c: db.Collection(name), now: func() time.Time { return time.Now().UTC() }}
}

// Name is the collection name.
func (c *Collection[T]) Name() string { return c.c.Name() }

// Find returns the documents matching filter in the requested window.
// The result is never nil.
func (c *Collection[T]) Find(ctx context.Context, filter any, lo ListOptions) ([]T, error) {
	opts := options.Find()
	if lo.Skip > 0 {
		opts.SetSkip(lo.Skip)
	}
	if lo.Limit > 0 {
		opts.SetLimit(lo.Limit)
	}
	if len(lo.Sort) > 0 {
		opts.SetSort(lo.Sort)
	}
	cur, err := c.c.Find(ctx, filterOrAll(filter), opts)
	if err != nil {
		return nil, c.wrap("find", err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, c.wrap("decode", err)
	}
	return out, nil
}

// FindOne returns the first match, or models.ErrNotFound.
func (c *Collection[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	var doc T
	if err := c.c.FindOne(ctx, filterOrAll(filter)).Decode(&doc); err != nil {
		return nil, c.wrap("find one", err)
	}
	return &doc, nil
}

// FindByID is FindOne on _id.
func (c *Collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

// Insert stores doc. When *T implements models.Document its id and
// timestamps are assigned first, so doc reflects what was written.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	if d, ok := any(doc).(models.Document); ok {
		d.PrepareInsert(c.now())
	}
	if _, err := c.c.InsertOne(ctx, doc); err != nil {
		return c.wrap("insert", err)
	}
	return nil
}

// Update $sets the given fields plus updated_at on the first match and
// returns the document as it is after the write.
func (c *Collection[T]) Update(ctx context.Context, filter any, set bson.M) (*T, error) {
	fields := bson.M{"updated_at": c.now()}
	for k, v := range set {
		fields[k] = v
	}
	return c.Apply(ctx, filter, bson.M{"$set": fields})
}

// Apply runs an arbitrary update document atomically against the first
// match and returns the post-update document, or models.ErrNotFound when
// nothing matched the filter.
func (c *Collection[T]) Apply(ctx context.Context, filter any, update any) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	if err := c.c.FindOneAndUpdate(ctx, filterOrAll(filter), update, opts).Decode(&doc); err != nil {
		return nil, c.wrap("update", err)
	}
	return &doc, nil
}

// Delete removes the first match and reports whether anything was removed.
func (c *Collection[T]) Delete(ctx context.Context, filter any) (bool, error) {
	res, err := c.c.DeleteOne(ctx, filterOrAll(filter))
	if err != nil {
		return false, c.wrap("delete", err)
	}
	return res.DeletedCount > 0, nil
}

// Count returns the number of documents matching filter.
func (c *Collection[T]) Count(ctx context.Context, filter any) (int64, error) {
	n, err := c.c.CountDocuments(ctx, filterOrAll(filter))
	if err != nil {
		return 0, c.wrap("count", err)
	}
	return n, nil
}

func (c *Collection[T]) wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.ErrNotFound
	case wafflemongo.IsDup(err):
		return fmt.Errorf("%s %s: %w", c.c.Name(), op, ErrDuplicate)
	}
	return fmt.Errorf("%s %s: %w", c.c.Name(), op, err)
}

func filterOrAll(f any) any {
	if f == nil {
		return bson.M{}
	}
	return f
}
