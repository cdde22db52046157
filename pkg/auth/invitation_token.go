package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// InvitationTokenPrefix marks invitation acceptance tokens.
const InvitationTokenPrefix = "inv_"

// GenerateInvitationToken creates an unguessable token for out-of-band
// invitation acceptance, in format: inv_{random} with 24 random bytes.
func GenerateInvitationToken() (string, error) {
	bytes := make([]byte, 24)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return InvitationTokenPrefix + hex.EncodeToString(bytes), nil
}

// ValidInvitationToken reports whether a string has the shape of an
// invitation token. It says nothing about whether the token exists.
func ValidInvitationToken(token string) bool {
	if !strings.HasPrefix(token, InvitationTokenPrefix) {
		return false
	}
	random := strings.TrimPrefix(token, InvitationTokenPrefix)
	if len(random) != 48 {
		return false
	}
	_, err := hex.DecodeString(random)
	return err == nil
}
