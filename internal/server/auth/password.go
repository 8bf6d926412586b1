// Package auth implements the credential primitives of the server:
// bcrypt password hashing/verification and HS256 session tokens.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashes. bcrypt
// generates a fresh salt per call and embeds it in the output, so the
// same password hashes to a different string every time.
const bcryptCost = 10

var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword generates a salted bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(h), err
}

// CheckPassword reports whether the cleartext password matches the
// stored hash. A malformed hash simply fails the check; callers never
// need to distinguish that case from a wrong password.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
