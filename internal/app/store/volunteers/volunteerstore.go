package volunteerstore

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

const (
	OpportunitiesCollection = "volunteer_opportunities"
	ApplicationsCollection  = "volunteer_applications"

	ApplicationPending = "pending"
)

type Store struct {
	opps *docstore.Collection[models.Opportunity]
	apps *docstore.Collection[models.Application]
}

func New(db *mongo.Database) *Store {
	return &Store{
		opps: docstore.New[models.Opportunity](db, OpportunitiesCollection),
		apps: docstore.New[models.Application](db, ApplicationsCollection),
	}
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

// List returns opportunities newest first.
func (s *Store) List(ctx context.Context, f Filter, skip, limit int64) ([]models.Opportunity, error) {
	return s.opps.Find(ctx, f.bson(), docstore.ListOptions{
		Skip:  skip,
		Limit: limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	})
}

func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error) {
	return s.opps.FindByID(ctx, id)
}

// Create inserts o as open with no applicants unless a status is given.
func (s *Store) Create(ctx context.Context, o models.Opportunity) (models.Opportunity, error) {
	o.ID = primitive.NilObjectID
	o.Applicants = []primitive.ObjectID{}
	o.ApplicationsCount = 0
	if err := s.opps.Insert(ctx, &o); err != nil {
		return models.Opportunity{}, err
	}
	return o, nil
}

// Update $sets the given fields. Applicants and the counter are not settable.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Opportunity, error) {
	for _, k := range []string{"_id", "applicants", "applications_count", "created_by", "created_at"} {
		delete(set, k)
	}
	return s.opps.Update(ctx, bson.M{"_id": id}, set)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.opps.Delete(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrNotFound
	}
	return nil
}

// ApplicationInput is the optional body of an application.
type ApplicationInput struct {
	Message      string
	Availability string
	ResumeURL    string
	PortfolioURL string
	References   []map[string]string
}

// Apply records user as an applicant. The applicant list and counter move
// in one write guarded on status, capacity and prior application; on a miss
// the opportunity is re-read to name the reason. Exactly one application
// record is inserted per success. If that insert fails the applicant entry
// is withdrawn again before the error is returned.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, user *models.User, in ApplicationInput) (*models.Opportunity, *models.Application, error) {
	now := time.Now().UTC()
	opp, err := s.opps.Apply(ctx,
		bson.M{
			"_id":        id,
			"status":     models.OpportunityOpen,
			"applicants": bson.M{"$ne": user.ID},
			"$expr":      bson.M{"$lt": bson.A{"$applications_count", "$capacity"}},
		},
		bson.M{
			"$push": bson.M{"applicants": user.ID},
			"$inc":  bson.M{"applications_count": 1},
			"$set":  bson.M{"updated_at": now},
		})
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil, s.classifyMiss(ctx, id, user.ID)
	}
	if err != nil {
		return nil, nil, err
	}

	app := models.Application{
		ID:            primitive.NewObjectID(),
		OpportunityID: id,
		UserID:        user.ID,
		UserName:      user.FullName,
		UserEmail:     user.Email,
		Message:       in.Message,
		Availability:  in.Availability,
		ResumeURL:     in.ResumeURL,
		PortfolioURL:  in.PortfolioURL,
		References:    in.References,
		Status:        ApplicationPending,
		CreatedAt:     now,
	}
	if err := s.apps.Insert(ctx, &app); err != nil {
		if _, cerr := s.opps.Apply(ctx,
			bson.M{"_id": id, "applicants": user.ID},
			bson.M{
				"$pull": bson.M{"applicants": user.ID},
				"$inc":  bson.M{"applications_count": -1},
			}); cerr != nil {
			return nil, nil, fmt.Errorf("record application: %w (withdraw applicant: %v)", err, cerr)
		}
		return nil, nil, fmt.Errorf("record application: %w", err)
	}
	return opp, &app, nil
}

// classifyMiss explains why the guarded apply matched nothing.
func (s *Store) classifyMiss(ctx context.Context, id, userID primitive.ObjectID) error {
	opp, err := s.opps.FindByID(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case opp.Status != models.OpportunityOpen:
		return models.ErrOpportunityClosed
	case opp.ApplicationsCount >= opp.Capacity:
		return models.ErrOpportunityFull
	case opp.HasApplicant(userID):
		return models.ErrAlreadyApplied
	}
	// The state moved between the write and the read; report it as full,
	// which is the only guard another applicant can trip.
	return models.ErrOpportunityFull
}

// Count returns the number of opportunities.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.opps.Count(ctx, nil)
}
