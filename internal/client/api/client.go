package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/visaguide/visaguide-client/internal/models"
	"github.com/visaguide/visaguide-client/pkg/api"
)

const defaultPollInterval = 5 * time.Second

// TokenSource supplies the bearer token attached to authenticated requests
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// apiError carries the HTTP status code of a failed backend call so callers
// can distinguish absence and authorization failures from transient errors.
type apiError struct {
	message string
	status  int
}

func (e *apiError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.status, e.message)
}

// IsUnauthorized reports whether err is a 401 response from the backend
func IsUnauthorized(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.status == http.StatusUnauthorized
}

// Client is the HTTP adapter to the Visa Guide backend. It covers the
// document collections, supporting-document uploads and the auth endpoints.
type Client struct {
	httpClient   *http.Client
	tokens       TokenSource
	logger       *slog.Logger
	baseURL      string
	pollInterval time.Duration
}

// NewClient creates a new backend client
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		logger:       logger,
		pollInterval: defaultPollInterval,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetTokenSource wires the token source used for authenticated requests.
// Set after construction because the auth service itself calls the client.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// SetPollInterval overrides the subscription polling interval
func (c *Client) SetPollInterval(interval time.Duration) {
	if interval > 0 {
		c.pollInterval = interval
	}
}

// Login authenticates a user with email and password
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", false, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a new token pair
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", false, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout invalidates the current session on the server
func (c *Client) Logout(ctx context.Context) error {
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", true, nil, nil)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Write merges the given fields into the remote document. Fields absent from
// the map are left untouched on the server.
func (c *Client) Write(ctx context.Context, collection, documentID string, fields map[string]any) error {
	path := fmt.Sprintf("/api/v1/collections/%s/%s", collection, documentID)
	req := api.FieldWriteRequest{Fields: fields}
	err := c.doRequest(ctx, http.MethodPatch, path, true, req, nil)
	if err != nil {
		return fmt.Errorf("write request failed: %w", err)
	}
	return nil
}

// Read fetches the full remote document. Returns models.ErrDocumentNotFound
// when the document does not exist.
func (c *Client) Read(ctx context.Context, collection, documentID string) (map[string]any, error) {
	path := fmt.Sprintf("/api/v1/collections/%s/%s", collection, documentID)

	var document map[string]any
	err := c.doRequest(ctx, http.MethodGet, path, true, nil, &document)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.status == http.StatusNotFound {
			return nil, models.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read request failed: %w", err)
	}
	return document, nil
}

// Subscribe watches the remote document by polling. The callback always
// receives the initial state first (nil when the document is absent), then a
// full snapshot after every observed change. The returned function stops the
// subscription.
func (c *Client) Subscribe(ctx context.Context, collection, documentID string, fn func(document map[string]any)) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)
	go c.poll(subCtx, collection, documentID, fn)
	return cancel, nil
}

func (c *Client) poll(ctx context.Context, collection, documentID string, fn func(document map[string]any)) {
	var last []byte
	delivered := false

	deliver := func() {
		document, err := c.Read(ctx, collection, documentID)
		if err != nil {
			if errors.Is(err, models.ErrDocumentNotFound) {
				if !delivered || last != nil {
					delivered = true
					last = nil
					fn(nil)
				}
				return
			}
			if ctx.Err() == nil {
				c.logger.Warn("subscription poll failed",
					"collection", collection,
					"document_id", documentID,
					"error", err)
			}
			return
		}

		data, err := json.Marshal(document)
		if err != nil {
			c.logger.Warn("failed to encode snapshot", "error", err)
			return
		}
		if !delivered || !bytes.Equal(data, last) {
			delivered = true
			last = data
			fn(document)
		}
	}

	deliver()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deliver()
		}
	}
}

// UploadBlob uploads a supporting document as multipart form data
func (c *Client) UploadBlob(ctx context.Context, ownerID, category, filename string, content io.Reader) (*api.UploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	path := fmt.Sprintf("/api/v1/uploads/%s/%s", ownerID, category)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := c.setAuthHeader(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var uploadResp api.UploadResponse
	if err := decodeResponse(resp, &uploadResp); err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	return &uploadResp, nil
}

// DeleteBlob removes a previously uploaded supporting document by its storage path
func (c *Client) DeleteBlob(ctx context.Context, path string) error {
	reqPath := "/api/v1/uploads?path=" + url.QueryEscape(path)
	err := c.doRequest(ctx, http.MethodDelete, reqPath, true, nil, nil)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

func (c *Client) setAuthHeader(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return fmt.Errorf("no token source configured")
	}
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// doRequest performs an HTTP request with a JSON body and decodes the response
func (c *Client) doRequest(ctx context.Context, method, path string, authed bool, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if err := c.setAuthHeader(ctx, req); err != nil {
			return err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return decodeResponse(resp, result)
}

func decodeResponse(resp *http.Response, result interface{}) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &apiError{status: resp.StatusCode, message: errResp.Error}
		}
		return &apiError{status: resp.StatusCode, message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
