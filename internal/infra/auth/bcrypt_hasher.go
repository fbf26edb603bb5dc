// Package auth implements the password and session services.
package auth

import (
	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores nothing past 72 bytes; x/crypto refuses longer input outright.
const maxPasswordBytes = 72

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher uses auth.bcryptCost when it is inside bcrypt's range.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost}
	if cfg != nil && cfg.Auth != nil {
		if c := cfg.Auth.BcryptCost; c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
			h.cost = c
		}
	}

	return h
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", errors.Errorf("password is %d bytes, bcrypt accepts at most %d", len(password), maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(hash), nil
}

// Check is false for a mismatch and for a malformed hash alike.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
