// internal/app/features/users/edit.go
package users

import (
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleUpdate handles PUT /users/{id}. Users may edit their own profile;
// role and is_active changes need an admin.
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
	if in.Role != nil {
		*in.Role = normalize.Role(*in.Role)
	}
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update user")
	defer cancel()
	store := userstore.New(h.DB)

	existing, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load user failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Users, authz.Update, existing.ID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	actor, _ := auth.CurrentUser(r)
	if in.adminOnly() && !actor.IsAdmin() {
		h.ErrLog.Write(w, r, resource, "", authz.ErrForbidden)
		return
	}

	upd := in.profileUpdate()
	updated, err := store.Update(ctx, id, upd)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "update user failed", err)
		return
	}

	if fields := upd.Fields(); len(fields) > 0 {
		h.AuditLog.UserUpdated(ctx, r, actor.ID, id, strings.Join(fields, ","))
	}
	if upd.Role != nil && existing.Role != updated.Role {
		h.AuditLog.RoleChanged(ctx, r, actor.ID, id, existing.Role, updated.Role)
	}
	apierrors.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /users/{id} (admin only).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete user")
	defer cancel()
	store := userstore.New(h.DB)

	existing, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load user failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Users, authz.Delete, existing.ID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := store.Delete(ctx, id); err != nil {
		h.ErrLog.Write(w, r, resource, "delete user failed", err)
		return
	}

	actor, _ := auth.CurrentUser(r)
	h.AuditLog.UserDeleted(ctx, r, actor.ID, id, existing.Email)
	h.Log.Info("user deleted", zap.String("user_id", id.Hex()), zap.String("by", actor.ID.Hex()))
	apierrors.Message(w, "User deleted successfully")
}
