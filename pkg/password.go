package pkg

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is lowered in tests, at 14 a hash takes about a second.
var BcryptCost = 14

// HashPassword returns the bcrypt hash stored for a user's password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func PasswordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
