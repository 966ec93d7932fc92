package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor used for all password hashing.
// Tuned so a single hash takes tens of milliseconds on commodity hardware:
// slow enough to blunt offline guessing, fast enough for interactive login.
const PasswordHashCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password.
// The salt is generated internally by bcrypt and embedded in the output.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison cost is dominated by the hash's embedded cost
// factor, so a mismatch takes as long as a match.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
