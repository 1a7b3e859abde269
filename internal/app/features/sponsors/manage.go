// internal/app/features/sponsors/manage.go
package sponsors

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	sponsorstore "github.com/dalemusser/communityhub/internal/app/store/sponsors"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /sponsors/ (admin only).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	if err := authz.Authorize(u, authz.Sponsors, authz.Create, primitive.NilObjectID); err != nil {
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

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create sponsor")
	defer cancel()

	sp, err := sponsorstore.New(h.DB).Create(ctx, models.Sponsor{
		Name:        in.Name,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		WebsiteURL:  in.WebsiteURL,
		Tier:        in.Tier,
		Contact:     in.Contact.model(),
		Status:      in.Status,
		CreatedBy:   u.ID,
	})
	if err != nil {
		h.ErrLog.Write(w, r, resource, "create sponsor failed", err)
		return
	}

	h.Log.Info("sponsor created", zap.String("sponsor_id", sp.ID.Hex()))
	apierrors.WriteJSON(w, http.StatusOK, sp)
}

// HandleUpdate handles PUT /sponsors/{id} as a partial merge.
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
	if in.Tier != nil {
		*in.Tier = normalize.Role(*in.Tier)
	}
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update sponsor")
	defer cancel()
	store := sponsorstore.New(h.DB)

	existing, err := store.Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load sponsor failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Sponsors, authz.Update, existing.OwnerID()); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	updated, err := store.Update(ctx, id, in.set())
	if err != nil {
		h.ErrLog.Write(w, r, resource, "update sponsor failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /sponsors/{id} (admin only).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete sponsor")
	defer cancel()
	store := sponsorstore.New(h.DB)

	existing, err := store.Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load sponsor failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Sponsors, authz.Delete, existing.OwnerID()); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := store.Delete(ctx, id); err != nil {
		h.ErrLog.Write(w, r, resource, "delete sponsor failed", err)
		return
	}

	h.Log.Info("sponsor deleted", zap.String("sponsor_id", id.Hex()))
	apierrors.Message(w, "Sponsor deleted successfully")
}
