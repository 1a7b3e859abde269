package sponsorstore

import (
	"context"
	"time"

	"github.com/dalemusser/communityhub/internal/app/store/docstore"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	SponsorsCollection  = "sponsors"
	InquiriesCollection = "sponsorship_inquiries"

	InquiryPending = "pending"
)

type Store struct {
	sponsors  *docstore.Collection[models.Sponsor]
	inquiries *docstore.Collection[models.Inquiry]
}

func New(db *mongo.Database) *Store {
	return &Store{
		sponsors:  docstore.New[models.Sponsor](db, SponsorsCollection),
		inquiries: docstore.New[models.Inquiry](db, InquiriesCollection),
	}
}

// Filter narrows List. Empty fields are ignored.
type Filter struct {
	Status string
	Tier   string
}

func (f Filter) bson() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Tier != "" {
		q["tier"] = f.Tier
	}
	return q
}

// List returns sponsors newest first.
func (s *Store) List(ctx context.Context, f Filter, skip, limit int64) ([]models.Sponsor, error) {
	return s.sponsors.Find(ctx, f.bson(), docstore.ListOptions{
		Skip:  skip,
		Limit: limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	})
}

func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*models.Sponsor, error) {
	return s.sponsors.FindByID(ctx, id)
}

func (s *Store) Create(ctx context.Context, sp models.Sponsor) (models.Sponsor, error) {
	sp.ID = primitive.NilObjectID
	sp.Contact.Email = normalize.Email(sp.Contact.Email)
	if err := s.sponsors.Insert(ctx, &sp); err != nil {
		return models.Sponsor{}, err
	}
	return sp, nil
}

// Update $sets the given fields.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Sponsor, error) {
	for _, k := range []string{"_id", "created_by", "created_at"} {
		delete(set, k)
	}
	return s.sponsors.Update(ctx, bson.M{"_id": id}, set)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.sponsors.Delete(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrNotFound
	}
	return nil
}

// SubmitInquiry stores a sponsorship request as pending.
func (s *Store) SubmitInquiry(ctx context.Context, in models.Inquiry) (models.Inquiry, error) {
	in.ID = primitive.NewObjectID()
	in.Email = normalize.Email(in.Email)
	in.Status = InquiryPending
	in.SubmittedAt = time.Now().UTC()
	if err := s.inquiries.Insert(ctx, &in); err != nil {
		return models.Inquiry{}, err
	}
	return in, nil
}

// Inquiries lists inquiries newest first.
func (s *Store) Inquiries(ctx context.Context, skip, limit int64) ([]models.Inquiry, error) {
	return s.inquiries.Find(ctx, nil, docstore.ListOptions{
		Skip:  skip,
		Limit: limit,
		Sort:  bson.D{{Key: "submitted_at", Value: -1}},
	})
}

// Count returns the number of sponsors.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.sponsors.Count(ctx, nil)
}
