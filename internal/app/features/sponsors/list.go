// internal/app/features/sponsors/list.go
package sponsors

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	sponsorstore "github.com/dalemusser/communityhub/internal/app/store/sponsors"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/app/system/paging"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /sponsors/?skip=&limit=&status=&tier=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page, err := paging.Parse(r)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	f := sponsorstore.Filter{
		Status: normalize.QueryParam(query.Get(r, "status")),
		Tier:   normalize.Role(query.Get(r, "tier")),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list sponsors")
	defer cancel()

	list, err := sponsorstore.New(h.DB).List(ctx, f, page.Skip, page.Limit)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "list sponsors failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /sponsors/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get sponsor")
	defer cancel()

	sp, err := sponsorstore.New(h.DB).Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "get sponsor failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, sp)
}
