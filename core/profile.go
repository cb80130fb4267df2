package core

import "time"

// AuthResult is the outcome of an authentication attempt against the
// identity service. Expected failures (rejected key, unreachable server)
// are reported through Success and ErrorMessage, never through a panic.
type AuthResult struct {
	Success      bool
	Token        string
	Expires      string
	ErrorMessage string
}

// Profile is the single stored credential record for the logged-in user.
// An empty Address means no active session; every other field is
// meaningless in that state.
type Profile struct {
	Address string   `json:"address"`
	APIKey  string   `json:"apiKey"`
	Token   string   `json:"token"`
	Expires string   `json:"expires"`
	Nonce   uint64   `json:"nonce"`
	NFTs    []string `json:"nfts"`
}

// IsLoggedIn reports whether the profile holds an active session.
func (p Profile) IsLoggedIn() bool {
	return p.Address != ""
}

// SetActive populates the profile from a successful authentication.
func (p *Profile) SetActive(res AuthResult, address, apiKey string, nonce uint64) {
	p.Address = address
	p.APIKey = apiKey
	p.Token = res.Token
	p.Expires = res.Expires
	p.Nonce = nonce
	p.NFTs = nil
}

// Clear resets every field to its logged-out zero value.
func (p *Profile) Clear() {
	*p = Profile{}
}

// SessionState describes where the profile sits in the session lifecycle.
type SessionState string

const (
	StateLoggedOut     SessionState = "logged_out"
	StateLoggedIn      SessionState = "logged_in"
	StateExpired       SessionState = "expired"
	StateUnknownExpiry SessionState = "unknown_expiry"
)

// State derives the session state from the address and the token expiry.
// An unparseable expiry is not an error: the token may still be valid and
// only a validate round trip can tell.
func (p Profile) State(now time.Time) SessionState {
	if !p.IsLoggedIn() {
		return StateLoggedOut
	}

	expiry, ok := ParseExpiry(p.Expires)
	if !ok {
		// Fall back to the exp claim when the token is a JWT.
		expiry, ok = TokenExpiry(p.Token)
		if !ok {
			return StateUnknownExpiry
		}
	}

	if now.After(expiry) {
		return StateExpired
	}

	return StateLoggedIn
}
