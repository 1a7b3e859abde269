package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/communityhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated user & “found?” flag.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*models.User)
	return u, ok && u != nil
}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// WithTestUser injects u into the request the same way RequireUser does.
// Handler tests use it to skip token plumbing.
func WithTestUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(WithUser(r.Context(), u))
}

/*─────────────────────────────────────────────────────────────────────────────*
| Bearer authentication                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// UserFetcher loads the account a token's subject refers to.
// It returns models.ErrNotFound when no such user exists.
type UserFetcher interface {
	FetchUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Authenticator resolves "Authorization: Bearer <token>" to an active user.
type Authenticator struct {
	Tokens *TokenService
	Users  UserFetcher
	Log    *zap.Logger
}

// NewAuthenticator wires a token service to a user source.
func NewAuthenticator(tokens *TokenService, users UserFetcher, logger *zap.Logger) *Authenticator {
	return &Authenticator{Tokens: tokens, Users: users, Log: logger}
}

// Resolve returns the active user named by the request's bearer token.
// Every client-side failure is ErrInvalidToken; store failures pass through.
func (a *Authenticator) Resolve(r *http.Request) (*models.User, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, err := a.Tokens.Decode(raw)
	if err != nil {
		return nil, ErrInvalidToken
	}
	oid, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := a.Users.FetchUser(r.Context(), oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// RequireUser rejects requests without a valid token for an active account
// (401) and otherwise places the user in the request context.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := a.Resolve(r)
		if errors.Is(err, ErrInvalidToken) {
			WriteUnauthorized(w, ErrInvalidToken.Error())
			return
		}
		if err != nil {
			a.Log.Error("resolve bearer user failed", zap.Error(err), zap.String("path", r.URL.Path))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Internal server error"})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

// WriteUnauthorized sends the 401 body every credential failure shares.
func WriteUnauthorized(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "Could not validate credentials"
	} else {
		detail = strings.ToUpper(detail[:1]) + detail[1:]
	}
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func bearerToken(r *http.Request) (string, bool) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, tok, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}
