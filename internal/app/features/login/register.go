// internal/app/features/login/register.go
package login

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleRegister handles POST /auth/register. New accounts are active users
// with the "user" role; the response is the stored user.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if err := request.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	in.clean()
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	digest, err := auth.HashPassword(in.Password, h.BcryptCost)
	if err != nil {
		h.ErrLog.Write(w, r, resource, "hash password failed", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "register user")
	defer cancel()

	u, err := userstore.New(h.DB).Create(ctx, models.User{
		Email:          in.Email,
		FullName:       in.FullName,
		Role:           models.RoleUser,
		IsActive:       true,
		HashedPassword: digest,
		Avatar:         in.Avatar,
		Bio:            in.Bio,
		Location:       in.Location,
		Interests:      in.Interests,
	})
	if err != nil {
		h.ErrLog.Write(w, r, resource, "create user failed", err)
		return
	}

	h.AuditLog.UserRegistered(ctx, r, u.ID, u.Email)
	h.Log.Info("user registered", zap.String("user_id", u.ID.Hex()))
	apierrors.WriteJSON(w, http.StatusOK, u)
}
