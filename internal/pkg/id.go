package pkg

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

// GenerateGameID - generates a new unique game identifier.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateUserID - generates a new unique user identifier.
func GenerateUserID() string {
	return uuid.NewString()
}

// GenerateStateToken - generates an opaque token for the OAuth state
// handshake.
func GenerateStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
