package ports

import (
	"context"

	"github.com/locki-io/locki-id-addon/core"
)

// IdentityClient talks to the remote identity service that issues and
// revokes bearer tokens in exchange for an API key.
type IdentityClient interface {
	// Authenticate exchanges the API key for a bearer token. Rejections and
	// transport failures are both reported through the result, with a
	// message fit for display.
	Authenticate(ctx context.Context, apiKey string) core.AuthResult

	// Validate asks the server whether the token is still valid and returns
	// the refreshed expiry string on success.
	Validate(ctx context.Context, token string) (string, error)

	// Logout revokes the token server-side. Best effort: a failure here
	// must not block a local logout.
	Logout(ctx context.Context, address, token string) error

	// Endpoint returns the configured base URL, for display only.
	Endpoint() string
}
