// internal/app/features/articles/create.go
package articles

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	articlestore "github.com/dalemusser/communityhub/internal/app/store/articles"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /articles/. The caller is recorded as author.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	if err := authz.Authorize(u, authz.Articles, authz.Create, primitive.NilObjectID); err != nil {
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

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create article")
	defer cancel()

	a, err := articlestore.New(h.DB).Create(ctx, models.Article{
		Title:    in.Title,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		Tags:     in.Tags,
		Status:   in.Status,
		Author:   models.Author{ID: u.ID, Name: u.FullName, Avatar: u.Avatar},
	})
	if err != nil {
		h.ErrLog.Write(w, r, resource, "create article failed", err)
		return
	}

	h.Log.Info("article created", zap.String("article_id", a.ID.Hex()), zap.String("author_id", u.ID.Hex()))
	apierrors.WriteJSON(w, http.StatusOK, a)
}
