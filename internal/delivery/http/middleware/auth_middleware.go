// Package middleware contains the HTTP middleware of the application.
package middleware

import (
	"strings"

	"storerate/internal/domain/entity"
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/domain/repository"
	"storerate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// contextKeyUser is the echo context key the authenticated user is stored under.
const contextKeyUser = "currentUser"

// AuthMiddleware provides middleware for bearer token authentication and role authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token, re-resolves the embedded user
// id against current records and attaches the user to the context. It
// short-circuits before any handler logic runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrMissingToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			// A token for a user that no longer exists is just invalid.
			return domainerrors.ErrInvalidToken.WrapMessage("token references unknown user")
		}

		c.Set(contextKeyUser, user)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the attached user's
// role against an allowed set. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return domainerrors.ErrForbidden.WrapMessage("role check without authenticated user")
			}

			for _, role := range allowed {
				if user.Role == role {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden.WrapMessage("role " + user.Role.String() + " not allowed")
		}
	}
}

// CurrentUser returns the authenticated user attached by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok
}
