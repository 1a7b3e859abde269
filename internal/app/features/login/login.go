// internal/app/features/login/login.go
package login

import (
	"errors"
	"mime"
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleLogin handles POST /auth/login. The OAuth2 password form
// (username, password) is the primary shape; a JSON body with email and
// password is also accepted.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	creds, err := readCredentials(w, r)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := inputval.Validate(creds).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	email := normalize.Email(creds.Email)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login")
	defer cancel()

	u, err := userstore.New(h.DB).GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		h.AuditLog.LoginFailedUserNotFound(ctx, r, email)
		auth.WriteUnauthorized(w, badCredentials)
		return
	}
	if err != nil {
		h.ErrLog.Write(w, r, resource, "load user for login failed", err)
		return
	}
	if !auth.CheckPassword(creds.Password, u.HashedPassword) {
		h.AuditLog.LoginFailedWrongPassword(ctx, r, u.ID, u.Email)
		auth.WriteUnauthorized(w, badCredentials)
		return
	}
	if !u.IsActive {
		h.AuditLog.LoginFailedUserDisabled(ctx, r, u.ID, u.Email)
		auth.WriteUnauthorized(w, badCredentials)
		return
	}

	tok, err := h.Tokens.Issue(u.ID.Hex())
	if err != nil {
		h.ErrLog.Write(w, r, resource, "issue token failed", err)
		return
	}

	h.AuditLog.LoginSuccess(ctx, r, u.ID, u.Email)
	h.Log.Info("user logged in", zap.String("user_id", u.ID.Hex()))
	apierrors.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		User:        *u,
	})
}

func readCredentials(w http.ResponseWriter, r *http.Request) (credentials, error) {
	var c credentials
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		err := request.DecodeJSON(w, r, &c)
		return c, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, request.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return c, inputval.Errors{"body": "Invalid form body."}
	}
	c.Email = r.PostForm.Get("username")
	if c.Email == "" {
		c.Email = r.PostForm.Get("email")
	}
	c.Password = r.PostForm.Get("password")
	return c, nil
}
