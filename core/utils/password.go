package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes; truncate explicitly so that
// hashing and verification agree on long passwords
func normalizePassword(password string) []byte {
	b := []byte(strings.TrimSpace(password))
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(normalizePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), normalizePassword(password)) == nil
}
