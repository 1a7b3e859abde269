// internal/app/features/login/me.go
package login

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
)

// ServeMe handles GET /auth/me.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		auth.WriteUnauthorized(w, "")
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, u)
}
