// internal/app/features/users/handler.go
package users

import (
	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/v1/users: account administration and self-service
// profile edits.
type Handler struct {
	DB       *mongo.Database
	ErrLog   *apierrors.ErrorLogger
	Log      *zap.Logger
	AuditLog *auditlog.Logger
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, ErrLog: errLog, Log: logger, AuditLog: audit}
}

const resource = "User"
