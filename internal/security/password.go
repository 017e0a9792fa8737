package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type bcryptHasher struct {
	cost int
}

var _ domain.PasswordHasher = (*bcryptHasher)(nil)

// NewBcryptHasher returns a hasher using bcrypt.DefaultCost when cost is 0.
func NewBcryptHasher(cost int) *bcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(hash), err
}

// Compare returns domain.ErrUnauthorized when the password does not match.
func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrUnauthorized
	}
	return err
}
