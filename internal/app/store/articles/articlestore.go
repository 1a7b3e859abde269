package articlestore

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

const Collection = "articles"

// maxLikeAttempts bounds ToggleLike's retry when another request flips the
// same user's like between the read and the conditional write.
const maxLikeAttempts = 5

var errLikeContention = errors.New("like toggle lost too many races")

type Store struct {
	docs *docstore.Collection[models.Article]
}

func New(db *mongo.Database) *Store {
	return &Store{docs: docstore.New[models.Article](db, Collection)}
}

// Filter narrows List. Empty fields are ignored; Tag matches any element.
type Filter struct {
	Status string
	Tag    string
}

func (f Filter) bson() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	return q
}

// List returns articles newest first.
func (s *Store) List(ctx context.Context, f Filter, skip, limit int64) ([]models.Article, error) {
	return s.docs.Find(ctx, f.bson(), docstore.ListOptions{
		Skip:  skip,
		Limit: limit,
		Sort:  bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}},
	})
}

// Get loads an article without counting a view.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	return s.docs.FindByID(ctx, id)
}

// View loads an article and counts the read in the same write.
func (s *Store) View(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	return s.docs.Apply(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views_count": 1}})
}

// Create inserts a with zeroed counters.
func (s *Store) Create(ctx context.Context, a models.Article) (models.Article, error) {
	a.ID = primitive.NilObjectID
	a.LikedBy = []primitive.ObjectID{}
	a.LikesCount, a.ViewsCount, a.CommentsCount = 0, 0, 0
	if err := s.docs.Insert(ctx, &a); err != nil {
		return models.Article{}, err
	}
	return a, nil
}

// Update $sets the given fields. Counters, likes and the author snapshot
// are not settable here.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Article, error) {
	for _, k := range []string{"_id", "liked_by", "likes_count", "views_count", "comments_count", "author", "created_at"} {
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

// ToggleLike likes the article for userID if they have not liked it, and
// unlikes it otherwise. Each direction is a single conditional write that
// moves liked_by and likes_count together. liked reports the new state.
func (s *Store) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (liked bool, a *models.Article, err error) {
	for attempt := 0; attempt < maxLikeAttempts; attempt++ {
		cur, err := s.docs.FindByID(ctx, id)
		if err != nil {
			return false, nil, err
		}
		now := time.Now().UTC()

		if cur.LikedByUser(userID) {
			a, err = s.docs.Apply(ctx,
				bson.M{"_id": id, "liked_by": userID},
				bson.M{
					"$pull": bson.M{"liked_by": userID},
					"$inc":  bson.M{"likes_count": -1},
					"$set":  bson.M{"updated_at": now},
				})
			liked = false
		} else {
			a, err = s.docs.Apply(ctx,
				bson.M{"_id": id, "liked_by": bson.M{"$ne": userID}},
				bson.M{
					"$addToSet": bson.M{"liked_by": userID},
					"$inc":      bson.M{"likes_count": 1},
					"$set":      bson.M{"updated_at": now},
				})
			liked = true
		}

		if errors.Is(err, models.ErrNotFound) {
			// State changed underneath us (or the article vanished); re-read.
			continue
		}
		if err != nil {
			return false, nil, err
		}
		return liked, a, nil
	}
	return false, nil, fmt.Errorf("article %s: %w", id.Hex(), errLikeContention)
}

// Count returns the number of articles.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.docs.Count(ctx, nil)
}
