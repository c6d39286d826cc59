package middleware

import (
	"context"
	"fmt"
	"net/http"

	"clinic-management/internal/domain/entity"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const IdentityKey contextKey = "identity"

type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
	log         *logrus.Logger
}

func NewAuthMiddleware(authUsecase usecase.AuthUsecase, cookieName string, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookieName:  cookieName,
		log:         log,
	}
}

// Authenticate admits any request carrying a live session.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return m.gate(next)
}

// Require admits sessions whose role holds capability. Unknown capabilities panic
// when the route is registered.
func (m *AuthMiddleware) Require(capability entity.Capability) func(http.Handler) http.Handler {
	roles, ok := capability.AllowedRoles()
	if !ok {
		panic(fmt.Sprintf("middleware: unknown capability %q", capability))
	}

	return func(next http.Handler) http.Handler {
		return m.gate(next, roles...)
	}
}

func (m *AuthMiddleware) gate(next http.Handler, roles ...entity.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.authUsecase.Authorize(r.Context(), m.SessionToken(r), roles...)
		if err != nil {
			switch err {
			case usecase.ErrUnauthenticated:
				response.Unauthorized(w, "")
			case usecase.ErrForbidden:
				response.Forbidden(w, "")
			default:
				m.log.Warnf("Failed to authorize request: %+v", err)
				response.InternalServerError(w, "")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// SessionToken returns the session cookie value, or "" when absent.
func (m *AuthMiddleware) SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// WithIdentity stores identity in ctx
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// GetIdentityFromContext extracts the authenticated identity from context
func GetIdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*entity.Identity)
	return identity, ok && identity != nil
}
