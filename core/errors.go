package core

import "errors"

var (
	// ErrNotLoggedIn is returned when an operation requires an active session
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrAuthRejected is returned when the identity service rejects the API key
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrValidationFailed is returned when a token validation round trip fails
	ErrValidationFailed = errors.New("token validation failed")

	// ErrNetworkFailure is returned when a remote service cannot be reached
	ErrNetworkFailure = errors.New("network failure")

	// ErrLedgerUnavailable is returned when the ledger indexer returns an error
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// ErrStoreOperationFailed is returned when the profile cannot be persisted
	ErrStoreOperationFailed = errors.New("store operation failed")
)
