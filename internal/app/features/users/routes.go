// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /api/v1/users. Every route requires a bearer token.
func Routes(h *Handler, authn *auth.Authenticator) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireUser)

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Put("/{id}/role", h.HandleSetRole)

	return r
}
