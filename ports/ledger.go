package ports

import (
	"context"

	"github.com/locki-io/locki-id-addon/core"
)

// LedgerClient queries the blockchain indexing service for account state.
type LedgerClient interface {
	// AccountNonce returns the account's replay-protection counter.
	AccountNonce(ctx context.Context, address string) (uint64, error)

	// AccountNFTs returns every NFT held by the account. An account with
	// zero holdings yields an empty slice, not an error.
	AccountNFTs(ctx context.Context, address string) ([]core.NftRecord, error)
}
