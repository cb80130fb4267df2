package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/locki-io/locki-id-addon/core"
	"github.com/locki-io/locki-id-addon/ports"
)

// SessionService owns the credential session lifecycle: login, validate,
// logout and the ledger-derived refreshes. Operations are serialized with a
// mutex; the profile store is a single-writer resource and no two lifecycle
// operations may interleave.
type SessionService struct {
	identity ports.IdentityClient
	ledger   ports.LedgerClient
	store    ports.ProfileStore
	events   ports.EventPublisher
	log      *zap.Logger

	mu      sync.Mutex
	profile core.Profile
}

// NewSessionService creates the service and loads the persisted profile, so
// the process starts in whatever state the last run left behind.
func NewSessionService(
	identity ports.IdentityClient,
	ledger ports.LedgerClient,
	store ports.ProfileStore,
	events ports.EventPublisher,
	log *zap.Logger,
) *SessionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionService{
		identity: identity,
		ledger:   ledger,
		store:    store,
		events:   events,
		log:      log,
		profile:  store.Load(),
	}
}

// Status is the profile plus its derived lifecycle state, as rendered by
// the panel.
type Status struct {
	State      core.SessionState
	Address    string
	Endpoint   string
	ExpiryHint string
	Nonce      uint64
	NFTCount   int
}

// Status reloads the profile from the store and reports the current state.
// Reloading first means edits made by another process show up immediately.
func (s *SessionService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reload()

	st := Status{
		State:    s.profile.State(time.Now()),
		Address:  s.profile.Address,
		Endpoint: s.identity.Endpoint(),
		Nonce:    s.profile.Nonce,
		NFTCount: len(s.profile.NFTs),
	}

	expiry, ok := core.ParseExpiry(s.profile.Expires)
	if !ok {
		expiry, ok = core.TokenExpiry(s.profile.Token)
	}
	if ok {
		st.ExpiryHint = core.DescribeExpiry(expiry, time.Now())
	}

	return st
}

// Login authenticates the API key and, on success, makes the session
// active. On failure the session stays logged out; if a stale session was
// still around, it is explicitly logged out both server-side and locally so
// no half-set state survives the failed attempt.
func (s *SessionService) Login(ctx context.Context, address, apiKey string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.reload()

	res := s.identity.Authenticate(ctx, apiKey)
	if !res.Success {
		if s.profile.Address != "" {
			s.forceLogout(ctx)
		}
		return "", fmt.Errorf("%w: %s", core.ErrAuthRejected, res.ErrorMessage)
	}

	s.profile.SetActive(res, address, apiKey, 0)
	s.save()
	s.publishLogin(ctx, address)

	s.log.Info("logged in", zap.String("address", address))
	return "Logged in", nil
}

// Validate asks the identity service whether the stored token is still
// valid and refreshes the stored expiry. A failed validation keeps the
// session logged in: the failure may be transient and only the user decides
// when to log out.
func (s *SessionService) Validate(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.reload()

	if !s.profile.IsLoggedIn() {
		return "", core.ErrNotLoggedIn
	}

	expires, err := s.identity.Validate(ctx, s.profile.Token)
	if err != nil {
		return "", fmt.Errorf("%w; you probably want to log out and log in again", err)
	}

	s.profile.Expires = expires
	s.save()

	return "Authentication token is valid", nil
}

// Logout clears the session unconditionally. The server-side revocation is
// attempted first but its failure never blocks the local logout.
func (s *SessionService) Logout(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.reload()

	s.forceLogout(ctx)
	return "You have been logged out", nil
}

// RefreshNonce fetches the account nonce from the ledger. Read-only with
// respect to login status.
func (s *SessionService) RefreshNonce(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.reload()

	if !s.profile.IsLoggedIn() {
		return "", core.ErrNotLoggedIn
	}

	nonce, err := s.ledger.AccountNonce(ctx, s.profile.Address)
	if err != nil {
		return "", err
	}

	s.profile.Nonce = nonce
	s.save()

	return fmt.Sprintf("Nonce: %d", nonce), nil
}

// RefreshNFTs replaces the stored NFT URL list wholesale from the ledger.
// Zero holdings is a normal outcome, not an error.
func (s *SessionService) RefreshNFTs(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.reload()

	if !s.profile.IsLoggedIn() {
		return "", core.ErrNotLoggedIn
	}

	records, err := s.ledger.AccountNFTs(ctx, s.profile.Address)
	if err != nil {
		return "", err
	}

	urls := core.ExtractDisplayURLs(records)
	s.profile.NFTs = urls
	s.save()

	return fmt.Sprintf("%d NFTs loaded", len(urls)), nil
}

// NFTs returns the currently stored display URLs.
func (s *SessionService) NFTs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reload()
	return append([]string(nil), s.profile.NFTs...)
}

// forceLogout revokes the stored token server-side (best effort) and clears
// the local profile. Caller holds the mutex.
func (s *SessionService) forceLogout(ctx context.Context) {
	address := s.profile.Address

	if address != "" {
		if err := s.identity.Logout(ctx, address, s.profile.Token); err != nil {
			s.log.Warn("server-side logout failed, clearing local session anyway",
				zap.String("address", address), zap.Error(err))
		}
	}

	s.profile.Clear()
	s.save()

	if address != "" {
		if err := s.events.PublishLogout(ctx, address); err != nil {
			s.log.Warn("failed to publish logout event", zap.Error(err))
		}
		s.log.Info("logged out", zap.String("address", address))
	}
}

func (s *SessionService) publishLogin(ctx context.Context, address string) {
	if err := s.events.PublishLogin(ctx, address); err != nil {
		s.log.Warn("failed to publish login event", zap.Error(err))
	}
}

// save persists the profile. Persistence failures are best-effort: the
// in-memory session keeps working and the failure is only logged.
func (s *SessionService) save() {
	if err := s.store.Save(s.profile); err != nil {
		s.log.Warn("failed to persist profile", zap.Error(err))
	}
}

// reload re-reads the profile from the store so out-of-process changes (or
// a corrupted file) are picked up after every operation.
func (s *SessionService) reload() {
	s.profile = s.store.Load()
}
