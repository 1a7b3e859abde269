// internal/app/features/events/delete.go
package events

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	eventstore "github.com/dalemusser/communityhub/internal/app/store/events"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /events/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete event")
	defer cancel()
	store := eventstore.New(h.DB)

	existing, err := store.Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load event failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Events, authz.Delete, existing.OwnerID()); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := store.Delete(ctx, id); err != nil {
		h.ErrLog.Write(w, r, resource, "delete event failed", err)
		return
	}

	h.Log.Info("event deleted", zap.String("event_id", id.Hex()))
	apierrors.Message(w, "Event deleted successfully")
}
