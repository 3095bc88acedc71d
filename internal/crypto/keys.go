package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for device-key derivation
const (
	// Argon2Time - number of iterations (time cost)
	Argon2Time = 1
	// Argon2Memory - memory in KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - number of parallel threads
	Argon2Threads = 4
	// Argon2KeyLen - derived key length in bytes
	Argon2KeyLen = 32
	// SecretSize - size of the random device secret in bytes
	SecretSize = 32
	// SaltSize - salt size in bytes
	SaltSize = 32
)

// GenerateSecret generates a cryptographically random device secret
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	return secret, nil
}

// GenerateSalt generates a cryptographically random salt
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveDeviceKey derives the 32-byte key used to protect cached session
// tokens at rest. The secret and salt are generated once per device and
// persisted next to the local database; the key itself is never stored.
func DeriveDeviceKey(secret, salt []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("device secret cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}
	return argon2.IDKey(secret, salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen), nil
}
