package auth

import (
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost 12 keeps offline brute force expensive while staying under
// ~300ms per verification on current hardware.
const BcryptCost = 12

// HashPassword returns a base64-wrapped bcrypt hash. The wrapping avoids the
// '$' characters of the raw hash, which dotenv-style config files mangle.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(hash), nil
}

// VerifyPassword checks a password against a stored hash. Both raw bcrypt
// hashes ("$2a$...") and base64-wrapped ones are accepted.
func VerifyPassword(password, stored string) bool {
	hash := stored
	if !strings.HasPrefix(stored, "$") {
		decoded, err := base64.StdEncoding.DecodeString(stored)
		if err != nil {
			return false
		}
		hash = string(decoded)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
