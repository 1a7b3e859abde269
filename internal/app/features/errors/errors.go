// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.uber.org/zap"
)

// Body is the error envelope every non-2xx response uses.
type Body struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

// WriteJSON sends v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteDetail sends {"detail": detail}.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, Body{Detail: detail})
}

// Message is the {"message": ...} body of delete and action endpoints.
func Message(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// WriteValidation sends 422 with per-field messages.
func WriteValidation(w http.ResponseWriter, errs inputval.Errors) {
	WriteJSON(w, http.StatusUnprocessableEntity, Body{Detail: "validation failed", Errors: errs})
}

// Status returns the HTTP status and client-facing detail for err.
// resource names the thing a 404 refers to ("Event"). ok is false for
// errors that are not part of the API contract.
func Status(err error, resource string) (status int, detail string, ok bool) {
	var verrs inputval.Errors
	switch {
	case stderrors.As(err, &verrs):
		return http.StatusUnprocessableEntity, "validation failed", true
	case stderrors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "Could not validate credentials", true
	case stderrors.Is(err, authz.ErrForbidden):
		return http.StatusForbidden, "Not enough permissions", true
	case stderrors.Is(err, models.ErrNotFound):
		if resource == "" {
			resource = "Resource"
		}
		return http.StatusNotFound, resource + " not found", true
	case stderrors.Is(err, models.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already registered", true
	case stderrors.Is(err, models.ErrAlreadyRegistered):
		return http.StatusBadRequest, "Already registered for this event", true
	case stderrors.Is(err, models.ErrAlreadyApplied):
		return http.StatusBadRequest, "You have already applied for this opportunity", true
	case stderrors.Is(err, models.ErrOpportunityClosed):
		return http.StatusBadRequest, "This opportunity is no longer accepting applications", true
	case stderrors.Is(err, models.ErrOpportunityFull):
		return http.StatusBadRequest, "This opportunity has reached its capacity", true
	}
	return http.StatusInternalServerError, "Internal server error", false
}

// ErrorLogger writes error responses and logs the ones that are server faults.
type ErrorLogger struct {
	Log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// Write maps err onto its response. Server faults are logged with msg and
// the request path; the client only sees "Internal server error".
func (e *ErrorLogger) Write(w http.ResponseWriter, r *http.Request, resource, msg string, err error) {
	status, detail, ok := Status(err, resource)

	var verrs inputval.Errors
	switch {
	case status == http.StatusUnauthorized:
		auth.WriteUnauthorized(w, detail)
		return
	case status == http.StatusUnprocessableEntity && stderrors.As(err, &verrs):
		WriteValidation(w, verrs)
		return
	}

	if !ok {
		e.Log.Error(msg,
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
	}
	WriteDetail(w, status, detail)
}
