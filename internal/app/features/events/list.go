// internal/app/features/events/list.go
package events

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	eventstore "github.com/dalemusser/communityhub/internal/app/store/events"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/app/system/paging"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /events/?skip=&limit=&status=&category=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page, err := paging.Parse(r)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	f := eventstore.Filter{
		Status:   normalize.QueryParam(query.Get(r, "status")),
		Category: normalize.QueryParam(query.Get(r, "category")),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list events")
	defer cancel()

	list, err := eventstore.New(h.DB).List(ctx, f, page.Skip, page.Limit)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "list events failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /events/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get event")
	defer cancel()

	e, err := eventstore.New(h.DB).Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "get event failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, e)
}
