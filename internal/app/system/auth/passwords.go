// internal/app/system/auth/passwords.go
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches what existing password digests were created with.
const DefaultBcryptCost = 12

// ErrBadCost is returned for a bcrypt cost outside the library's range.
var ErrBadCost = errors.New("bcrypt cost out of range")

// ValidCost reports whether cost is accepted by bcrypt.
func ValidCost(cost int) bool {
	return cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost
}

// HashPassword returns a salted bcrypt digest of password.
// A zero cost selects DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if !ValidCost(cost) {
		return "", ErrBadCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches digest. A malformed or
// empty digest simply does not match.
func CheckPassword(password, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
