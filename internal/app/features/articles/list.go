// internal/app/features/articles/list.go
package articles

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	articlestore "github.com/dalemusser/communityhub/internal/app/store/articles"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/app/system/paging"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /articles/?skip=&limit=&status=&tag=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page, err := paging.Parse(r)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	f := articlestore.Filter{
		Status: normalize.QueryParam(query.Get(r, "status")),
		Tag:    normalize.QueryParam(query.Get(r, "tag")),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list articles")
	defer cancel()

	list, err := articlestore.New(h.DB).List(ctx, f, page.Skip, page.Limit)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "list articles failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /articles/{id}. Each read counts as a view.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get article")
	defer cancel()

	a, err := articlestore.New(h.DB).View(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "get article failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, a)
}
