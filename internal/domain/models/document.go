// internal/domain/models/document.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is implemented by every top-level record so the generic store can
// assign identity and timestamps on insert.
type Document interface {
	PrepareInsert(now time.Time)
}

// stamp fills a zero id and both timestamps.
func stamp(id *primitive.ObjectID, createdAt, updatedAt *time.Time, now time.Time) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
	*createdAt = now
	*updatedAt = now
}
