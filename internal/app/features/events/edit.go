// internal/app/features/events/edit.go
package events

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	eventstore "github.com/dalemusser/communityhub/internal/app/store/events"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
)

// HandleUpdate handles PUT /events/{id}: a partial merge of the given fields.
// The event is loaded before the permission check so a missing event is a
// 404 for everyone.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	var in updateInput
	if err := request.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	in.clean()
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update event")
	defer cancel()
	store := eventstore.New(h.DB)

	existing, err := store.Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load event failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Events, authz.Update, existing.OwnerID()); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	updated, err := store.Update(ctx, id, in.set())
	if err != nil {
		h.ErrLog.Write(w, r, resource, "update event failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, updated)
}
