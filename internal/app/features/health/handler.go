// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client and logger.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"healthy", "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"unhealthy", "database":"disconnected", "message":"Database unavailable" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if h.Client == nil {
		apierrors.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status: "unhealthy", Database: "disconnected", Message: "Database unavailable",
		})
		return
	}
	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		apierrors.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status: "unhealthy", Database: "disconnected", Message: "Database unavailable",
		})
		return
	}

	apierrors.WriteJSON(w, http.StatusOK, healthResponse{Status: "healthy", Database: "connected"})
}

// ServeRoot handles GET / with a static welcome document.
func (h *Handler) ServeRoot(w http.ResponseWriter, _ *http.Request) {
	apierrors.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Welcome to Global Nepali API",
		"version": Version,
	})
}
