// internal/app/features/volunteers/list.go
package volunteers

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	volunteerstore "github.com/dalemusser/communityhub/internal/app/store/volunteers"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/app/system/paging"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /volunteers/?skip=&limit=&status=&category=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page, err := paging.Parse(r)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	f := volunteerstore.Filter{
		Status:   normalize.QueryParam(query.Get(r, "status")),
		Category: normalize.QueryParam(query.Get(r, "category")),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list opportunities")
	defer cancel()

	list, err := volunteerstore.New(h.DB).List(ctx, f, page.Skip, page.Limit)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "list opportunities failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /volunteers/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get opportunity")
	defer cancel()

	o, err := volunteerstore.New(h.DB).Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "get opportunity failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, o)
}
