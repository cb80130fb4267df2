package core

import (
	"fmt"
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryFormat is the canonical format used when writing the expiry field.
const ExpiryFormat = "2006-01-02T15:04:05Z"

// expiryLayouts are tried in order when reading a persisted expiry string.
// Older profiles may carry fractional seconds or an RFC 1123 timestamp
// written by a previous identity server.
var expiryLayouts = []string{
	ExpiryFormat,                  // ISO 8601 with Z suffix
	"2006-01-02T15:04:05.999999Z", // ISO 8601 with fractional seconds
	time.RFC1123,                  // RFC 1123, used by the old identity server
}

// ParseExpiry parses a stored expiry string, trying each accepted layout in
// order and short-circuiting on the first that matches. The second return
// value is false when no layout matches; an unknown expiry is not an error.
func ParseExpiry(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// TokenExpiry extracts the exp claim from a bearer token when the token
// happens to be a JWT. The claims are read without signature verification:
// the value is only used as a display fallback when the stored expiry
// string is absent or unparseable, never for an authorization decision.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time.UTC(), true
}

// DescribeExpiry renders a human-readable hint of when the token expires,
// coarsening the unit as the expiry moves further away.
func DescribeExpiry(expiry, now time.Time) string {
	left := expiry.Sub(now)
	if left <= 0 {
		return "already expired"
	}

	days := int(left.Hours() / 24)
	switch {
	case days > 14:
		return "on " + expiry.Format("2006-01-02")
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case left >= 2*time.Hour:
		return fmt.Sprintf("in %d hours", int(math.Round(left.Hours())))
	case left >= 2*time.Minute:
		return fmt.Sprintf("in %d minutes", int(math.Round(left.Minutes())))
	default:
		return "within seconds"
	}
}
