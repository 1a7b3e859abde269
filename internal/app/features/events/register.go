// internal/app/features/events/register.go
package events

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	eventstore "github.com/dalemusser/communityhub/internal/app/store/events"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleRegister handles POST /events/{id}/register for the caller.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := authz.Authorize(u, authz.Events, authz.Register, primitive.NilObjectID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "register for event")
	defer cancel()

	if _, err := eventstore.New(h.DB).Register(ctx, id, u); err != nil {
		h.ErrLog.Write(w, r, resource, "register for event failed", err)
		return
	}
	apierrors.Message(w, "Successfully registered for the event")
}
