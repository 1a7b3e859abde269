// internal/app/features/events/handler.go
package events

import (
	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/v1/events.
type Handler struct {
	DB     *mongo.Database
	ErrLog *apierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, ErrLog: errLog, Log: logger}
}

// resource names events in 404 details.
const resource = "Event"
