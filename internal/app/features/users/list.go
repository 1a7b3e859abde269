// internal/app/features/users/list.go
package users

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/paging"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /users/?skip=&limit= (admin only).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if err := authz.AuthorizeRequest(r, authz.Users, authz.List, primitive.NilObjectID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	page, err := paging.Parse(r)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	list, err := userstore.New(h.DB).List(ctx, page.Skip, page.Limit)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "list users failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /users/{id} for admins and the account itself.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get user")
	defer cancel()

	u, err := userstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "get user failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Users, authz.View, u.ID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, u)
}
