package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/visaguide/visaguide-client/internal/client/storage"
	"github.com/visaguide/visaguide-client/internal/crypto"
	"github.com/visaguide/visaguide-client/internal/models"
	"github.com/visaguide/visaguide-client/internal/validation"
	pkgapi "github.com/visaguide/visaguide-client/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API is the subset of the backend client used for authentication
type API interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Refresh(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error)
	Logout(ctx context.Context) error
}

// Service manages the authenticated session: login, logout, token refresh
// and identity change notifications. Tokens are encrypted with the device
// key before they reach storage.
type Service struct {
	api       API
	sessions  storage.SessionStorage
	logger    *slog.Logger
	deviceKey []byte

	mu        sync.Mutex
	listeners map[int]func(*models.Identity)
	nextID    int
}

// NewService creates a new session service.
// deviceKey must be 32 bytes, see LoadOrCreateDeviceKey.
func NewService(apiClient API, sessions storage.SessionStorage, deviceKey []byte, logger *slog.Logger) *Service {
	return &Service{
		api:       apiClient,
		sessions:  sessions,
		deviceKey: deviceKey,
		logger:    logger,
		listeners: make(map[int]func(*models.Identity)),
	}
}

// Login authenticates the user and persists the session.
// Listeners registered via OnIdentityChanged are notified with the new identity.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	deviceID, err := s.getOrCreateDeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create device ID: %w", err)
	}

	identity, err := s.saveTokens(ctx, resp, email, deviceID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("logged in", "user_id", identity.UserID, "email", identity.Email)
	s.notify(identity)
	return identity, nil
}

// Refresh exchanges the stored refresh token for a new token pair
func (s *Service) Refresh(ctx context.Context) (*models.Identity, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not signed in")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	refreshToken, err := crypto.DecryptFromBase64(session.RefreshToken, s.deviceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}

	resp, err := s.api.Refresh(ctx, pkgapi.RefreshRequest{RefreshToken: string(refreshToken)})
	if err != nil {
		return nil, fmt.Errorf("refresh failed: %w", err)
	}

	identity, err := s.saveTokens(ctx, resp, session.Email, session.DeviceID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("session refreshed", "user_id", identity.UserID)
	s.notify(identity)
	return identity, nil
}

// Logout removes the local session. The server is notified best effort,
// a failed server call never blocks the local sign-out. Listeners are
// notified with a nil identity.
func (s *Service) Logout(ctx context.Context) error {
	_, err := s.sessions.GetSession(ctx)
	if err != nil {
		s.logger.Debug("no session found during logout", "error", err)
	} else {
		if logoutErr := s.api.Logout(ctx); logoutErr != nil {
			s.logger.Warn("failed to logout on server", "error", logoutErr)
		}
	}

	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	s.notify(nil)
	return nil
}

// CurrentIdentity returns the authenticated identity, or (nil, nil) when the
// user is signed out or the cached access token has expired.
func (s *Service) CurrentIdentity(ctx context.Context) (*models.Identity, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	if !expiresAt.After(time.Now()) {
		return nil, nil
	}

	accessToken, err := crypto.DecryptFromBase64(session.AccessToken, s.deviceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}

	return &models.Identity{
		UserID:      session.UserID,
		Email:       session.Email,
		AccessToken: string(accessToken),
		ExpiresAt:   expiresAt,
	}, nil
}

// AccessToken returns a valid bearer token for backend calls, refreshing the
// session first when the cached token has expired. Implements api.TokenSource.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	identity, err := s.CurrentIdentity(ctx)
	if err != nil {
		return "", err
	}
	if identity == nil {
		identity, err = s.Refresh(ctx)
		if err != nil {
			return "", fmt.Errorf("session expired: %w", err)
		}
	}
	return identity.AccessToken, nil
}

// OnIdentityChanged registers a callback invoked after every login, refresh
// and logout. A nil identity means signed out. The returned function removes
// the registration.
func (s *Service) OnIdentityChanged(fn func(identity *models.Identity)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Service) notify(identity *models.Identity) {
	s.mu.Lock()
	fns := make([]func(*models.Identity), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Warn("identity listener panicked", "panic", r)
				}
			}()
			fn(identity)
		}()
	}
}

// saveTokens encrypts the token pair, persists the session and returns the
// resulting identity
func (s *Service) saveTokens(ctx context.Context, resp *pkgapi.TokenResponse, email, deviceID string) (*models.Identity, error) {
	userID, claimEmail := parseClaims(resp.AccessToken)
	if claimEmail != "" {
		email = claimEmail
	}

	encryptedAccess, err := crypto.EncryptToBase64([]byte(resp.AccessToken), s.deviceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encryptedRefresh, err := crypto.EncryptToBase64([]byte(resp.RefreshToken), s.deviceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	session := &storage.Session{
		UserID:       userID,
		Email:        email,
		DeviceID:     deviceID,
		AccessToken:  encryptedAccess,
		RefreshToken: encryptedRefresh,
		ExpiresAt:    expiresAt.Unix(),
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &models.Identity{
		UserID:      userID,
		Email:       email,
		AccessToken: resp.AccessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// parseClaims extracts the subject and email claims from the access token.
// The signature is not verified, the token came over TLS from the issuer and
// is only inspected for display and identification.
func parseClaims(accessToken string) (userID, email string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return "", ""
	}
	if sub, err := claims.GetSubject(); err == nil {
		userID = sub
	}
	if v, ok := claims["email"].(string); ok {
		email = v
	}
	return userID, email
}

// getOrCreateDeviceID reuses the device ID of a previous session on this
// device so repeated logins keep a stable identifier
func (s *Service) getOrCreateDeviceID(ctx context.Context) (string, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return uuid.New().String(), nil
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	if session.DeviceID != "" {
		return session.DeviceID, nil
	}
	return uuid.New().String(), nil
}
