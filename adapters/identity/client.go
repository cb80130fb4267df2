// Package identity implements the HTTP client for the Locki ID service.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/locki-io/locki-id-addon/core"
	"github.com/locki-io/locki-id-addon/ports"
)

// DefaultEndpoint is the production identity server.
const DefaultEndpoint = "https://id.locki.io"

// Client is an HTTP implementation of the IdentityClient port.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ ports.IdentityClient = (*Client)(nil)

// NewClient creates a client against the given base URL. Every request is
// bounded by timeout; a timed-out call surfaces as a failure, not a hang.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultEndpoint
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the configured base URL.
func (c *Client) Endpoint() string {
	return c.baseURL
}

type identifyRequest struct {
	APIKey string `json:"api_key"`
}

type identifyResponse struct {
	Status       string `json:"status"`
	Token        string `json:"token"`
	Expires      string `json:"expires"`
	ErrorMessage string `json:"error_message"`
}

// Authenticate exchanges the API key for a bearer token. The result always
// carries a display-ready message on failure; transport errors never leak
// as raw Go error strings.
func (c *Client) Authenticate(ctx context.Context, apiKey string) core.AuthResult {
	var resp identifyResponse
	status, err := c.post(ctx, "/u/identify", identifyRequest{APIKey: apiKey}, &resp)
	if err != nil {
		return core.AuthResult{
			ErrorMessage: fmt.Sprintf("unable to reach the Locki ID server at %s", c.baseURL),
		}
	}

	if status != http.StatusOK || resp.Status != "success" {
		msg := resp.ErrorMessage
		if msg == "" {
			msg = "the Locki ID server rejected the API key"
		}
		return core.AuthResult{ErrorMessage: msg}
	}

	return core.AuthResult{
		Success: true,
		Token:   resp.Token,
		Expires: resp.Expires,
	}
}

type validateRequest struct {
	Token string `json:"token"`
}

type validateResponse struct {
	Status       string `json:"status"`
	TokenExpires string `json:"token_expires"`
	ErrorMessage string `json:"error_message"`
}

// Validate checks the token server-side and returns the refreshed expiry.
func (c *Client) Validate(ctx context.Context, token string) (string, error) {
	var resp validateResponse
	status, err := c.post(ctx, "/u/validate_token", validateRequest{Token: token}, &resp)
	if err != nil {
		return "", fmt.Errorf("%w: unable to reach the Locki ID server", core.ErrNetworkFailure)
	}

	if status != http.StatusOK || resp.Status != "success" {
		if resp.ErrorMessage != "" {
			return "", fmt.Errorf("%w: %s", core.ErrValidationFailed, resp.ErrorMessage)
		}
		return "", core.ErrValidationFailed
	}

	return resp.TokenExpires, nil
}

type deleteTokenRequest struct {
	Address string `json:"address"`
	Token   string `json:"token"`
}

// Logout revokes the token server-side. Callers treat a failure as
// non-fatal and still clear their local state.
func (c *Client) Logout(ctx context.Context, address, token string) error {
	status, err := c.post(ctx, "/u/delete_token", deleteTokenRequest{Address: address, Token: token}, nil)
	if err != nil {
		return fmt.Errorf("%w: unable to reach the Locki ID server", core.ErrNetworkFailure)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: logout returned status %d", core.ErrNetworkFailure, status)
	}
	return nil
}

// post sends a JSON body and decodes the JSON response into out when the
// server returned one. The HTTP status is returned alongside so callers can
// distinguish a rejection from a transport failure.
func (c *Client) post(ctx context.Context, path string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil {
		// A failed decode on an error status is fine; the caller falls back
		// to a generic message.
		_ = json.NewDecoder(resp.Body).Decode(out)
	}

	return resp.StatusCode, nil
}
