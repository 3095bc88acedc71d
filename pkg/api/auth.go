package api

// LoginRequest represents an authentication request
type LoginRequest struct {
	Email    string `json:"email"`    // account email
	Password string `json:"password"` // account password
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse represents a successful authentication response
type TokenResponse struct {
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // refresh token
	ExpiresIn    int64  `json:"expires_in"`    // access token lifetime in seconds
}

// ErrorResponse represents an error envelope returned by the backend
type ErrorResponse struct {
	Error   string `json:"error"`             // error description
	Message string `json:"message,omitempty"` // optional human-readable detail
}
