package service

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently truncates past 72 bytes; sign-up rejects longer inputs.
const maxPasswordBytes = 72

// HashPassword returns the bcrypt hash of plain at the default cost.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports a mismatch as bcrypt.ErrMismatchedHashAndPassword.
func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
