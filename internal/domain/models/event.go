// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventStatusUpcoming = "upcoming"

// Organizer is a snapshot of the creating user taken at creation time.
// It is not kept in sync with later profile changes.
type Organizer struct {
	ID   primitive.ObjectID `bson:"id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// Registration is one entry in an event's registrant list.
type Registration struct {
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	UserName     string             `bson:"user_name" json:"user_name"`
	RegisteredAt time.Time          `bson:"registered_at" json:"registered_at"`
}

// Event is a scheduled community event. Capacity is advisory; registrations
// are not checked against it. RegisteredCount tracks len(Registrations).
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Location    string             `bson:"location" json:"location"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`

	Organizer       Organizer      `bson:"organizer" json:"organizer"`
	Registrations   []Registration `bson:"registrations" json:"registrations"`
	RegisteredCount int            `bson:"registered_count" json:"registered_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (e *Event) PrepareInsert(now time.Time) {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt, now)
	if e.Registrations == nil {
		e.Registrations = []Registration{}
	}
	if e.Status == "" {
		e.Status = EventStatusUpcoming
	}
}

// OwnerID returns the organizer's user id.
func (e *Event) OwnerID() primitive.ObjectID { return e.Organizer.ID }

// IsRegistered reports whether userID already appears among the registrants.
func (e *Event) IsRegistered(userID primitive.ObjectID) bool {
	for _, r := range e.Registrations {
		if r.UserID == userID {
			return true
		}
	}
	return false
}
