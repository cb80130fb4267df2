package core

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry_AcceptedFormats(t *testing.T) {
	want := time.Date(2015, 1, 1, 10, 0, 0, 0, time.UTC)

	inputs := []string{
		"2015-01-01T10:00:00Z",
		"2015-01-01T10:00:00.000000Z",
		"Thu, 01 Jan 2015 10:00:00 GMT",
	}

	for _, raw := range inputs {
		got, ok := ParseExpiry(raw)
		require.True(t, ok, "expected %q to parse", raw)
		assert.True(t, want.Equal(got), "expected %q to equal %v, got %v", raw, want, got)
	}
}

func TestParseExpiry_FractionalSeconds(t *testing.T) {
	got, ok := ParseExpiry("2015-01-01T10:00:00.250000Z")
	require.True(t, ok)
	assert.Equal(t, 250*int(time.Millisecond), got.Nanosecond())
}

func TestParseExpiry_Unknown(t *testing.T) {
	for _, raw := range []string{
		"",
		"not a date",
		"2015-01-01",             // date only
		"2015-01-01T10:00:00",    // missing Z suffix
		"01 Jan 2015 10:00:00",   // missing weekday
		"1420106400",             // unix timestamp
	} {
		_, ok := ParseExpiry(raw)
		assert.False(t, ok, "expected %q not to parse", raw)
	}
}

func TestTokenExpiry_JWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "erd1qqqq",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	got, ok := TokenExpiry(signed)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	for _, token := range []string{"", "opaque-bearer-token", "a.b"} {
		_, ok := TokenExpiry(token)
		assert.False(t, ok, "expected %q to yield no expiry", token)
	}
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "erd1qqqq"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := TokenExpiry(signed)
	assert.False(t, ok)
}

func TestDescribeExpiry(t *testing.T) {
	now := time.Date(2015, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   string
	}{
		{"far away", now.AddDate(0, 2, 0), "on 2015-03-01"},
		{"days", now.Add(72 * time.Hour), "in 3 days"},
		{"hours", now.Add(5 * time.Hour), "in 5 hours"},
		{"minutes", now.Add(30 * time.Minute), "in 30 minutes"},
		{"seconds", now.Add(45 * time.Second), "within seconds"},
		{"past", now.Add(-time.Minute), "already expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeExpiry(tt.expiry, now))
		})
	}
}
