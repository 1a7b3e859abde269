// internal/app/features/articles/like.go
package articles

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	articlestore "github.com/dalemusser/communityhub/internal/app/store/articles"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleLike handles POST /articles/{id}/like. It toggles: a second call
// from the same user removes the like.
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := authz.Authorize(u, authz.Articles, authz.Like, primitive.NilObjectID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "toggle article like")
	defer cancel()

	liked, a, err := articlestore.New(h.DB).ToggleLike(ctx, id, u.ID)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "toggle like failed", err)
		return
	}

	msg := "Article unliked successfully"
	if liked {
		msg = "Article liked successfully"
	}
	apierrors.WriteJSON(w, http.StatusOK, likeResponse{Message: msg, Liked: liked, LikesCount: a.LikesCount})
}
