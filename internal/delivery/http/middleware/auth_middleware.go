package middleware

import (
	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeySessionClaims = "sessionClaims"
	ContextKeyUserID        = "userID"
	ContextKeyRole          = "role"
)

// AuthMiddleware provides middleware for session token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the session token carried by the HTTP-only cookie.
// Failures answer 403 through the central error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Cookie.Name)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrForbidden.WithDetails("session cookie is missing")
		}

		claims, err := m.tokenSvc.ValidateToken(cookie.Value)
		if err != nil {
			return domainerrors.ErrForbidden.WithDetails("invalid or expired session token")
		}

		// Set identity on the context for handlers to use
		c.Set(ContextKeySessionClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated session's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing from session")
			}

			if role != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("require '" + string(requiredRole) + "' role")
			}

			return next(c)
		}
	}
}
