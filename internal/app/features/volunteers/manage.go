// internal/app/features/volunteers/manage.go
package volunteers

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	volunteerstore "github.com/dalemusser/communityhub/internal/app/store/volunteers"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /volunteers/.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	if err := authz.Authorize(u, authz.Volunteers, authz.Create, primitive.NilObjectID); err != nil {
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

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create opportunity")
	defer cancel()

	o, err := volunteerstore.New(h.DB).Create(ctx, models.Opportunity{
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Category:     in.Category,
		Location:     in.Location,
		Commitment:   in.Commitment,
		Capacity:     in.Capacity,
		Status:       in.Status,
		CreatedBy:    u.ID,
	})
	if err != nil {
		h.ErrLog.Write(w, r, resource, "create opportunity failed", err)
		return
	}

	h.Log.Info("opportunity created", zap.String("opportunity_id", o.ID.Hex()), zap.String("created_by", u.ID.Hex()))
	apierrors.WriteJSON(w, http.StatusOK, o)
}

// HandleUpdate handles PUT /volunteers/{id} as a partial merge.
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
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update opportunity")
	defer cancel()
	store := volunteerstore.New(h.DB)

	existing, err := store.Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load opportunity failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Volunteers, authz.Update, existing.OwnerID()); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	updated, err := store.Update(ctx, id, in.set())
	if err != nil {
		h.ErrLog.Write(w, r, resource, "update opportunity failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /volunteers/{id}. Application records are kept.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete opportunity")
	defer cancel()
	store := volunteerstore.New(h.DB)

	existing, err := store.Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load opportunity failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Volunteers, authz.Delete, existing.OwnerID()); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := store.Delete(ctx, id); err != nil {
		h.ErrLog.Write(w, r, resource, "delete opportunity failed", err)
		return
	}

	h.Log.Info("opportunity deleted", zap.String("opportunity_id", id.Hex()))
	apierrors.Message(w, "Opportunity deleted successfully")
}
