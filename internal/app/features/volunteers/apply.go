// internal/app/features/volunteers/apply.go
package volunteers

import (
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/features/shared/request"
	volunteerstore "github.com/dalemusser/communityhub/internal/app/store/volunteers"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/authz"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleApply handles POST /volunteers/{id}/apply. The JSON body is optional.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	id, err := request.ObjectID(r, "id")
	if err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	if err := authz.Authorize(u, authz.Volunteers, authz.Apply, primitive.NilObjectID); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	var in applyInput
	if err := request.DecodeOptionalJSON(w, r, &in); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}
	in.clean()
	if err := inputval.Validate(in).Err(); err != nil {
		h.ErrLog.Write(w, r, resource, "", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "apply to opportunity")
	defer cancel()

	_, app, err := volunteerstore.New(h.DB).Apply(ctx, id, u, volunteerstore.ApplicationInput{
		Message:      in.Message,
		Availability: in.Availability,
		ResumeURL:    in.ResumeURL,
		PortfolioURL: in.PortfolioURL,
		References:   in.References,
	})
	if err != nil {
		h.ErrLog.Write(w, r, resource, "apply for opportunity failed", err)
		return
	}

	h.Log.Info("volunteer application submitted",
		zap.String("opportunity_id", id.Hex()),
		zap.String("application_id", app.ID.Hex()),
		zap.String("user_id", u.ID.Hex()))
	apierrors.Message(w, "Application submitted successfully")
}
