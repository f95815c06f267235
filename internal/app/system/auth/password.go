package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService wraps bcrypt hashing so tests can inject a cheaper cost.
type PasswordService struct {
	cost int
}

// NewPasswordServiceWithCost returns a service with the configured work
// factor. Tests use bcrypt.MinCost to avoid the latency of the production
// setting.
func NewPasswordServiceWithCost(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash produces a self-contained bcrypt hash of plaintext. bcrypt truncates
// input past 72 bytes, so longer passwords are rejected rather than silently
// weakened.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", errors.New("auth: password must be 72 bytes or fewer")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. The comparison
// is constant-time inside bcrypt.
func (p *PasswordService) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
