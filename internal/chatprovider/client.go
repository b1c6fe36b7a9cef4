// Package chatprovider integrates with the external messaging service that
// hosts the chat feature. The integration is best-effort by contract: callers
// log failures and never surface them.
package chatprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRecord is the profile projection kept in sync with the chat provider.
type UserRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Client upserts user profiles into the external chat provider.
type Client interface {
	// UpsertUser creates or updates the user record. Callers treat a failure
	// as non-fatal: log it and continue.
	UpsertUser(ctx context.Context, user UserRecord) error
}

// Config holds chat provider credentials and endpoint.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// New returns a Client for the given credentials. When the credentials are
// empty the integration is disabled and a no-op client is returned.
func New(cfg Config) Client {
	if cfg.APIKey == "" || cfg.APISecret == "" || cfg.BaseURL == "" {
		return noopClient{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *httpClient) UpsertUser(ctx context.Context, user UserRecord) error {
	token, err := c.serverToken()
	if err != nil {
		return fmt.Errorf("chat provider token: %w", err)
	}

	payload, err := json.Marshal(map[string]any{
		"users": map[string]UserRecord{user.ID: user},
	})
	if err != nil {
		return fmt.Errorf("chat provider payload: %w", err)
	}

	url := fmt.Sprintf("%s/users?api_key=%s", c.cfg.BaseURL, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	req.Header.Set("Stream-Auth-Type", "jwt")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("chat provider request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("chat provider upsert failed: status %d", resp.StatusCode)
	}
	return nil
}

// serverToken signs a server-side JWT the provider accepts for admin calls.
func (c *httpClient) serverToken() (string, error) {
	claims := jwt.MapClaims{
		"server": true,
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.APISecret))
}

type noopClient struct{}

func (noopClient) UpsertUser(context.Context, UserRecord) error { return nil }
