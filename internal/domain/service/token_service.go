package service

import (
	"github.com/golang-jwt/jwt/v5"

	"storerate/internal/domain/entity"
)

// Claims defines the custom claims carried by the session token.
type Claims struct {
	UserID uint64      `json:"userId"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the
// signed, time-limited session tokens presented as bearer credentials.
type TokenService interface {
	// GenerateToken creates a session token bound to the given user.
	GenerateToken(userID uint64, role entity.Role) (string, error)

	// ValidateToken verifies signature and expiry and returns the
	// embedded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
