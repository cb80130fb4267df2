// Package ledger implements the HTTP client for the blockchain indexer.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/locki-io/locki-id-addon/core"
	"github.com/locki-io/locki-id-addon/ports"
)

// DefaultEndpoint is the public MultiversX indexer.
const DefaultEndpoint = "https://api.multiversx.com"

// defaultPageSize is the NFT page size requested from the indexer.
const defaultPageSize = 100

// Client is an HTTP implementation of the LedgerClient port.
type Client struct {
	baseURL  string
	http     *http.Client
	pageSize int
}

var _ ports.LedgerClient = (*Client)(nil)

// NewClient creates a client against the given indexer base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultEndpoint
	}
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		pageSize: defaultPageSize,
	}
}

type accountResponse struct {
	Address string `json:"address"`
	Nonce   uint64 `json:"nonce"`
	Balance string `json:"balance"`
}

// AccountNonce fetches the account's current nonce.
func (c *Client) AccountNonce(ctx context.Context, address string) (uint64, error) {
	var account accountResponse
	if err := c.get(ctx, "/accounts/"+url.PathEscape(address), &account); err != nil {
		return 0, err
	}
	return account.Nonce, nil
}

// AccountNFTs fetches every NFT held by the account, walking the indexer's
// pagination until a short page signals the end. Zero holdings yield an
// empty slice.
func (c *Client) AccountNFTs(ctx context.Context, address string) ([]core.NftRecord, error) {
	records := make([]core.NftRecord, 0, c.pageSize)

	for from := 0; ; from += c.pageSize {
		path := fmt.Sprintf("/accounts/%s/nfts?from=%d&size=%d", url.PathEscape(address), from, c.pageSize)

		var page []core.NftRecord
		if err := c.get(ctx, path, &page); err != nil {
			return nil, err
		}

		records = append(records, page...)
		if len(page) < c.pageSize {
			return records, nil
		}
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: unable to reach the ledger at %s", core.ErrNetworkFailure, c.baseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: indexer returned status %d", core.ErrLedgerUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed indexer response", core.ErrLedgerUnavailable)
	}

	return nil
}
