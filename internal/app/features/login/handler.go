// internal/app/features/login/handler.go
package login

import (
	apierrors "github.com/dalemusser/communityhub/internal/app/features/errors"
	"github.com/dalemusser/communityhub/internal/app/system/auditlog"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/v1/auth: registration, token login and /me.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	ErrLog     *apierrors.ErrorLogger
	Tokens     *auth.TokenService
	AuditLog   *auditlog.Logger
	BcryptCost int // 0 selects auth.DefaultBcryptCost
}

func NewHandler(db *mongo.Database, tokens *auth.TokenService, audit *auditlog.Logger, bcryptCost int, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		ErrLog:     errLog,
		Tokens:     tokens,
		AuditLog:   audit,
		BcryptCost: bcryptCost,
	}
}

const resource = "User"

// badCredentials is the single message for every failed login, so callers
// cannot tell a missing account from a wrong password.
const badCredentials = "Incorrect email or password"
