package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/core/ports"
)

const RoleAdmin = "admin"

type ctxKey int

const userIDKey ctxKey = iota

// Authenticator checks HS256 bearer tokens issued by the auth service and
// looks the subject up in the role table.
type Authenticator struct {
	secret []byte
	roles  ports.UserRoleRepository
	logger *zap.Logger
}

func NewAuthenticator(secret string, roles ports.UserRoleRepository, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		roles:  roles,
		logger: logger,
	}
}

func (a *Authenticator) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := a.authenticate(r)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
				return
			}

			ok, err := a.roles.HasRole(r.Context(), userID, role)
			if err != nil {
				writeError(w, a.logger, err)
				return
			}
			if !ok {
				a.logger.Warn("role check failed", zap.String("user_id", userID.String()), zap.String("role", role))
				writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}

func (a *Authenticator) authenticate(r *http.Request) (uuid.UUID, error) {
	if len(a.secret) == 0 {
		return uuid.Nil, errors.New("jwt secret not configured")
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return uuid.Nil, errors.New("missing bearer token")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), &claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.Subject)
}

// UserID returns the authenticated user stored by RequireRole.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
