package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const apiTokenBytes = 32

// NewAPIToken mints the long-lived dashboard token handed out once at
// account registration.
func NewAPIToken() (string, error) {
	buf := make([]byte, apiTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
