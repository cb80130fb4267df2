package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfile_SetActiveAndClear(t *testing.T) {
	var p Profile
	assert.False(t, p.IsLoggedIn())

	res := AuthResult{Success: true, Token: "tok-123", Expires: "2030-01-01T00:00:00Z"}
	p.SetActive(res, "erd1alice", "key-abc", 0)

	assert.True(t, p.IsLoggedIn())
	assert.Equal(t, "erd1alice", p.Address)
	assert.Equal(t, "key-abc", p.APIKey)
	assert.Equal(t, "tok-123", p.Token)
	assert.Equal(t, "2030-01-01T00:00:00Z", p.Expires)
	assert.Empty(t, p.NFTs)

	p.Clear()
	assert.False(t, p.IsLoggedIn())
	assert.Equal(t, Profile{}, p)
}

func TestProfile_SetActiveDropsPreviousNFTs(t *testing.T) {
	p := Profile{Address: "erd1old", NFTs: []string{"https://media/1.png"}, Nonce: 7}

	p.SetActive(AuthResult{Success: true, Token: "tok"}, "erd1new", "key", 0)

	assert.Equal(t, "erd1new", p.Address)
	assert.Zero(t, p.Nonce)
	assert.Empty(t, p.NFTs)
}

func TestProfile_State(t *testing.T) {
	now := time.Date(2015, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		profile Profile
		want    SessionState
	}{
		{"logged out", Profile{}, StateLoggedOut},
		{"valid", Profile{Address: "erd1a", Expires: "2015-06-02T12:00:00Z"}, StateLoggedIn},
		{"expired", Profile{Address: "erd1a", Expires: "2015-05-01T12:00:00Z"}, StateExpired},
		{"unknown expiry", Profile{Address: "erd1a", Token: "opaque"}, StateUnknownExpiry},
		{"garbled expiry", Profile{Address: "erd1a", Expires: "???", Token: "opaque"}, StateUnknownExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.State(now))
		})
	}
}
