// internal/app/features/events/create.go
package events

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	eventstore "github.com/dalemusser/communityhub/internal/app/store/events"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /events/. The caller becomes the organizer.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	if err := authz.Authorize(u, authz.Events, authz.Create, primitive.NilObjectID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	var in createInput
	if err := request.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	in.clean()
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create event")
	defer cancel()

	e, err := eventstore.New(h.DB).Create(ctx, models.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Capacity:    in.Capacity,
		Category:    in.Category,
		Status:      in.Status,
		Organizer:   models.Organizer{ID: u.ID, Name: u.FullName},
	})
	if err != nil {
		h.ErrLog.Write(w, r, resource, "create event failed", err)
		return
	}

	h.Log.Info("event created", zap.String("event_id", e.ID.Hex()), zap.String("organizer_id", u.ID.Hex()))
	apierrors.WriteJSON(w, http.StatusOK, e)
}
