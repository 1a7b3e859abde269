package eventstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/communityhub/internal/app/store/docstore"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const Collection = "events"

type Store struct {
	docs *docstore.Collection[models.Event]
}

func New(db *mongo.Database) *Store {
	return &Store{docs: docstore.New[models.Event](db, Collection)}
}

// Filter narrows List. Empty fields are ignored.
type Filter struct {
	Status   string
	Category string
}

func (f Filter) bson() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	return q
}

// List returns events soonest first.
func (s *Store) List(ctx context.Context, f Filter, skip, limit int64) ([]models.Event, error) {
	return s.docs.Find(ctx, f.bson(), docstore.ListOptions{
		Skip:  skip,
		Limit: limit,
		Sort:  bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}},
	})
}

func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return s.docs.FindByID(ctx, id)
}

// Create inserts e with an empty registrant list.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = primitive.NilObjectID
	e.Registrations = []models.Registration{}
	e.RegisteredCount = 0
	if err := s.docs.Insert(ctx, &e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// Update $sets the given fields. Registrations, counters and the organizer
// snapshot are not settable here.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Event, error) {
	for _, k := range []string{"_id", "registrations", "registered_count", "organizer", "created_at"} {
		delete(set, k)
	}
	return s.docs.Update(ctx, bson.M{"_id": id}, set)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.docs.Delete(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrNotFound
	}
	return nil
}

// Register adds user to the event's registrants in one conditional write,
// so concurrent registrations by the same user cannot both succeed.
// Returns models.ErrNotFound or models.ErrAlreadyRegistered when the write
// matched nothing. Capacity is not checked.
func (s *Store) Register(ctx context.Context, id primitive.ObjectID, user *models.User) (*models.Event, error) {
	reg := models.Registration{
		UserID:       user.ID,
		UserName:     user.FullName,
		RegisteredAt: time.Now().UTC(),
	}
	e, err := s.docs.Apply(ctx,
		bson.M{"_id": id, "registrations.user_id": bson.M{"$ne": user.ID}},
		bson.M{
			"$push": bson.M{"registrations": reg},
			"$inc":  bson.M{"registered_count": 1},
			"$set":  bson.M{"updated_at": reg.RegisteredAt},
		})
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	// Nothing matched: either the event is gone or the user is already in.
	cur, gerr := s.docs.FindByID(ctx, id)
	if gerr != nil {
		return nil, gerr
	}
	if cur.IsRegistered(user.ID) {
		return nil, models.ErrAlreadyRegistered
	}
	return nil, fmt.Errorf("register for event %s: write matched no document", id.Hex())
}

// Count returns the number of events.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.docs.Count(ctx, nil)
}
