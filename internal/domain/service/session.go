// Package service declares the ports usecases depend on.
// Implementations live under internal/infra.
package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PasswordHasher hashes account passwords. Hashes are self-describing,
// so Check works across cost changes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// SessionClaims defines the custom claims carried by the session cookie.
// Role is a snapshot taken at sign-in; authorization re-reads it from the database.
type SessionClaims struct {
	UserID uuid.UUID   `json:"uid"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// Issue signs a session token for the user.
	Issue(user *entity.User) (string, error)

	// Parse checks the validity of a token string and returns its claims.
	Parse(tokenString string) (*SessionClaims, error)

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
