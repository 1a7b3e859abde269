// internal/domain/models/opportunity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OpportunityOpen   = "open"
	OpportunityClosed = "closed"
)

// Opportunity is a volunteer opening. ApplicationsCount always equals
// len(Applicants); applications stop at Capacity or when Status != open.
type Opportunity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Requirements []string           `bson:"requirements" json:"requirements"`
	Category     string             `bson:"category" json:"category"`
	Location     string             `bson:"location" json:"location"`
	Commitment   string             `bson:"commitment" json:"commitment"`
	Capacity     int                `bson:"capacity" json:"capacity"`
	Status       string             `bson:"status" json:"status"`

	Applicants        []primitive.ObjectID `bson:"applicants" json:"applicants"`
	ApplicationsCount int                  `bson:"applications_count" json:"applications_count"`

	CreatedBy primitive.ObjectID `bson:"created_by" json:"created_by"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (o *Opportunity) PrepareInsert(now time.Time) {
	stamp(&o.ID, &o.CreatedAt, &o.UpdatedAt, now)
	if o.Requirements == nil {
		o.Requirements = []string{}
	}
	if o.Applicants == nil {
		o.Applicants = []primitive.ObjectID{}
	}
	if o.Status == "" {
		o.Status = OpportunityOpen
	}
}

func (o *Opportunity) OwnerID() primitive.ObjectID { return o.CreatedBy }

// HasApplicant reports whether userID already applied.
func (o *Opportunity) HasApplicant(userID primitive.ObjectID) bool {
	for _, id := range o.Applicants {
		if id == userID {
			return true
		}
	}
	return false
}

// Application is the audit record written once per successful apply.
// It is never updated after creation.
type Application struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	OpportunityID primitive.ObjectID  `bson:"opportunity_id" json:"opportunity_id"`
	UserID        primitive.ObjectID  `bson:"user_id" json:"user_id"`
	UserName      string              `bson:"user_name" json:"user_name"`
	UserEmail     string              `bson:"user_email" json:"user_email"`
	Message       string              `bson:"message,omitempty" json:"message,omitempty"`
	Availability  string              `bson:"availability,omitempty" json:"availability,omitempty"`
	ResumeURL     string              `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	PortfolioURL  string              `bson:"portfolio_url,omitempty" json:"portfolio_url,omitempty"`
	References    []map[string]string `bson:"references,omitempty" json:"references,omitempty"`
	Status        string              `bson:"status" json:"status"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
}
