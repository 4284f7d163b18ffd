package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for password hashing.
const BcryptCost = 12

// HashPassword hashes a plaintext password. The plaintext is never stored.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
