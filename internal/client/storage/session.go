package storage

import "context"

//go:generate moq -out session_mock.go . SessionStorage

// Session holds the persisted authentication state for this device.
// Token fields are stored encrypted (AES-GCM, base64-encoded); the auth
// service is responsible for the encryption layer.
type Session struct {
	UserID       string `json:"user_id"`       // UserID backend user identifier
	Email        string `json:"email"`         // Email account email
	DeviceID     string `json:"device_id"`     // DeviceID stable identifier of this client install
	AccessToken  string `json:"access_token"`  // AccessToken encrypted access token
	RefreshToken string `json:"refresh_token"` // RefreshToken encrypted refresh token
	ExpiresAt    int64  `json:"expires_at"`    // ExpiresAt access token expiry (unix seconds)
}

// SessionStorage defines interface for persisting the device session
type SessionStorage interface {
	// SaveSession stores or replaces the session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if no session exists.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session
	DeleteSession(ctx context.Context) error
}
