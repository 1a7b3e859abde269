// internal/domain/models/errors.go
package models

import "errors"

// Sentinel errors shared by the stores and the HTTP layer. Handlers map these
// to status codes in features/errors; anything not listed here is treated as an
// internal failure.
var (
	ErrNotFound = errors.New("not found")

	// Conflicts (400)
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrAlreadyApplied    = errors.New("you have already applied for this opportunity")
	ErrOpportunityClosed = errors.New("this opportunity is no longer accepting applications")
	ErrOpportunityFull   = errors.New("this opportunity has reached its capacity")
)
