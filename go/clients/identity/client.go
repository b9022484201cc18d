package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/clubdesk/clubdesk/go/internal/auth"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when the identity service rejects a credential
var ErrInvalidToken = errors.New("invalid or expired token")

// Client resolves bearer credentials against the external identity service
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates an identity client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type introspectResponse struct {
	Active     bool   `json:"active"`
	UserID     string `json:"user_id"`
	Superadmin bool   `json:"superadmin"`
}

// ResolveToken exchanges a bearer token for the caller identity behind it
func (c *Client) ResolveToken(ctx context.Context, token string) (auth.Caller, error) {
	if token == "" {
		return auth.Caller{}, ErrInvalidToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/introspect", nil)
	if err != nil {
		return auth.Caller{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return auth.Caller{}, fmt.Errorf("failed to call identity service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return auth.Caller{}, ErrInvalidToken
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return auth.Caller{}, fmt.Errorf("identity service returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload introspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return auth.Caller{}, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if !payload.Active {
		return auth.Caller{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return auth.Caller{}, fmt.Errorf("identity service returned malformed user id: %w", err)
	}
	return auth.Caller{
		UserID:     userID,
		Superadmin: payload.Superadmin,
	}, nil
}
