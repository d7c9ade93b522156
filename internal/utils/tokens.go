package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewVerificationCode returns an 8-character uppercase hex code suitable for
// typing from an email (4 random bytes, crypto source).
func NewVerificationCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
