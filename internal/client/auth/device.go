package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/visaguide/visaguide-client/internal/crypto"
)

// deviceSecret is the on-disk file holding the random per-device secret that
// session tokens are encrypted with. It is created on first use.
type deviceSecret struct {
	Secret string `json:"secret"` // random secret (base64)
	Salt   string `json:"salt"`   // argon2id salt (base64)
}

// LoadOrCreateDeviceKey returns the 32-byte encryption key for this device,
// deriving it from the secret file at path. A missing file is created with
// fresh random material and 0600 permissions.
func LoadOrCreateDeviceKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read device secret: %w", err)
		}
		return createDeviceKey(path)
	}

	var ds deviceSecret
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse device secret: %w", err)
	}

	secret, err := base64.StdEncoding.DecodeString(ds.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode device secret: %w", err)
	}
	salt, err := base64.StdEncoding.DecodeString(ds.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode device salt: %w", err)
	}

	key, err := crypto.DeriveDeviceKey(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive device key: %w", err)
	}
	return key, nil
}

func createDeviceKey(path string) ([]byte, error) {
	secret, err := crypto.GenerateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate device secret: %w", err)
	}
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate device salt: %w", err)
	}

	ds := deviceSecret{
		Secret: base64.StdEncoding.EncodeToString(secret),
		Salt:   base64.StdEncoding.EncodeToString(salt),
	}
	data, err := json.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to encode device secret: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write device secret: %w", err)
	}

	key, err := crypto.DeriveDeviceKey(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive device key: %w", err)
	}
	return key, nil
}
