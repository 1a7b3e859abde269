// internal/domain/models/sponsor.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SponsorStatusActive = "active"

// SponsorContact is the sponsor's point of contact.
type SponsorContact struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Position string `bson:"position,omitempty" json:"position,omitempty"`
}

type Sponsor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	LogoURL     string             `bson:"logo_url" json:"logo_url"`
	WebsiteURL  string             `bson:"website_url" json:"website_url"`
	Tier        string             `bson:"tier" json:"tier"`
	Contact     SponsorContact     `bson:"contact" json:"contact"`
	Status      string             `bson:"status" json:"status"`

	CreatedBy primitive.ObjectID `bson:"created_by" json:"created_by"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (s *Sponsor) PrepareInsert(now time.Time) {
	stamp(&s.ID, &s.CreatedAt, &s.UpdatedAt, now)
	if s.Status == "" {
		s.Status = SponsorStatusActive
	}
}

func (s *Sponsor) OwnerID() primitive.ObjectID { return s.CreatedBy }

// Inquiry is a sponsorship request submitted by a signed-in user.
// Never updated after creation.
type Inquiry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyName string             `bson:"company_name" json:"company_name"`
	ContactName string             `bson:"contact_name" json:"contact_name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Message     string             `bson:"message" json:"message"`
	DesiredTier string             `bson:"desired_tier" json:"desired_tier"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Status      string             `bson:"status" json:"status"`
	SubmittedAt time.Time          `bson:"submitted_at" json:"submitted_at"`
}
