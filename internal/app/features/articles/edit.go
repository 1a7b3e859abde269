// internal/app/features/articles/edit.go
package articles

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	articlestore "github.com/dalemusser/communityhub/internal/app/store/articles"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleUpdate handles PUT /articles/{id} as a partial merge.
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

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update article")
	defer cancel()
	store := articlestore.New(h.DB)

	existing, err := store.Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load article failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Articles, authz.Update, existing.OwnerID()); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	updated, err := store.Update(ctx, id, in.set())
	if err != nil {
		h.ErrLog.Write(w, r, resource, "update article failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /articles/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete article")
	defer cancel()
	store := articlestore.New(h.DB)

	existing, err := store.Get(ctx, id)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load article failed", err)
		return
	}
	if err := authz.AuthorizeRequest(r, authz.Articles, authz.Delete, existing.OwnerID()); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := store.Delete(ctx, id); err != nil {
		h.ErrLog.Write(w, r, resource, "delete article failed", err)
		return
	}

	h.Log.Info("article deleted", zap.String("article_id", id.Hex()))
	apierrors.Message(w, "Article deleted successfully")
}
