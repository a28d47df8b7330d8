package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt hash of password at the given cost.
// Passwords over bcrypt's 72-byte limit are rejected with common.ErrorValidation.
func HashPassword(password []byte, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password is longer than 72 bytes", common.ErrorValidation)
		}
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}
