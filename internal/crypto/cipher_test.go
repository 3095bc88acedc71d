package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	secret, err := GenerateSecret()
	require.NoError(t, err)
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveDeviceKey(secret, salt)
	require.NoError(t, err)
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("access-token-value")

	encrypted, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncrypt_EmptyPlaintext(t *testing.T) {
	_, err := Encrypt(nil, testKey(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plaintext cannot be empty")
}

func TestEncrypt_WrongKeySize(t *testing.T) {
	_, err := Encrypt([]byte("data"), []byte("short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be 32 bytes")
}

func TestDecrypt_WrongKey(t *testing.T) {
	key := testKey(t)
	otherKey := testKey(t)

	encrypted, err := Encrypt([]byte("data"), key)
	require.NoError(t, err)

	_, err = Decrypt(encrypted, otherKey)
	assert.Error(t, err)
}

func TestDecrypt_Tampered(t *testing.T) {
	key := testKey(t)

	encrypted, err := Encrypt([]byte("data"), key)
	require.NoError(t, err)

	encrypted[len(encrypted)-1] ^= 0xff

	_, err = Decrypt(encrypted, key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestDecrypt_TooShort(t *testing.T) {
	_, err := Decrypt([]byte("tiny"), testKey(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestEncryptToBase64_RoundTrip(t *testing.T) {
	key := testKey(t)

	encoded, err := EncryptToBase64([]byte("refresh-token"), key)
	require.NoError(t, err)

	decrypted, err := DecryptFromBase64(encoded, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("refresh-token"), decrypted)
}

func TestDeriveDeviceKey_Deterministic(t *testing.T) {
	secret, err := GenerateSecret()
	require.NoError(t, err)
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key1, err := DeriveDeviceKey(secret, salt)
	require.NoError(t, err)
	key2, err := DeriveDeviceKey(secret, salt)
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
	assert.Len(t, key1, Argon2KeyLen)
}

func TestDeriveDeviceKey_Validation(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = DeriveDeviceKey(nil, salt)
	assert.Error(t, err)

	_, err = DeriveDeviceKey([]byte("secret"), []byte("bad-salt"))
	assert.Error(t, err)
}
