// file: internals/features/users/service/password_service.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost 8 — cukup untuk beban login yang ada sekarang.
const bcryptCost = 8

// HashPassword meng-hash password plaintext. Plaintext tidak pernah
// disimpan atau di-log di mana pun.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash membandingkan password dengan hash tersimpan
// (constant-time di dalam bcrypt).
func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
