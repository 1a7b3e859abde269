// internal/app/features/users/role.go
package users

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// HandleSetRole handles PUT /users/{id}/role for admins and superusers.
// The role comes from a JSON body {"role": ...} or, failing that, ?role=.
func (h *Handler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	var in roleInput
	if err := request.DecodeOptionalJSON(w, r, &in); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if in.Role == "" {
		in.Role = query.Get(r, "role")
	}
	in.Role = normalize.Role(in.Role)
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "set user role")
	defer cancel()
	store := userstore.New(h.DB)

	existing, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load user failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Users, authz.ChangeRole, existing.ID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	updated, err := store.SetRole(ctx, id, in.Role)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "set user role failed", err)
		return
	}

	actor, _ := auth.CurrentUser(r)
	h.AuditLog.RoleChanged(ctx, r, actor.ID, id, existing.Role, updated.Role)
	h.Log.Info("user role changed",
		zap.String("user_id", id.Hex()),
		zap.String("from", existing.Role),
		zap.String("to", updated.Role))
	apierrors.Message(w, "User role updated to "+updated.Role)
}
