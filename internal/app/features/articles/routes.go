// internal/app/features/articles/routes.go
package articles

import (
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /api/v1/articles.
func Routes(h *Handler, authn *auth.Authenticator) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	r.Group(func(pr chi.Router) {
		pr.Use(authn.RequireUser)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Post("/{id}/like", h.HandleLike)
	})

	return r
}
