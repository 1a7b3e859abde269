// internal/app/features/sponsors/inquire.go
package sponsors

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	sponsorstore "github.com/dalemusser/communityhub/internal/app/store/sponsors"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleInquire handles POST /sponsors/inquire from any signed-in user.
func (h *Handler) HandleInquire(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	if err := authz.Authorize(u, authz.Sponsors, authz.Inquire, primitive.NilObjectID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	var in inquiryInput
	if err := request.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	in.clean()
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "sponsor inquiry")
	defer cancel()

	inq, err := sponsorstore.New(h.DB).SubmitInquiry(ctx, models.Inquiry{
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Message:     in.Message,
		DesiredTier: in.DesiredTier,
		UserID:      u.ID,
	})
	if err != nil {
		h.ErrLog.Write(w, r, resource, "submit sponsorship inquiry failed", err)
		return
	}

	h.Log.Info("sponsorship inquiry submitted",
		zap.String("inquiry_id", inq.ID.Hex()),
		zap.String("company", inq.CompanyName))
	apierrors.Message(w, "Sponsorship inquiry submitted successfully")
}
