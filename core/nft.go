package core

import "github.com/shopspring/decimal"

// NftMedia is one media entry attached to an NFT record.
type NftMedia struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	FileType     string `json:"fileType"`
}

// NftRecord is a single asset as returned by the ledger indexer. Balance is
// the held quantity (semi-fungible tokens report it as a decimal string).
type NftRecord struct {
	Identifier string          `json:"identifier"`
	Collection string          `json:"collection"`
	Name       string          `json:"name"`
	URL        string          `json:"url"`
	Media      []NftMedia      `json:"media"`
	Balance    decimal.Decimal `json:"balance"`
}

// DisplayURL returns the record's preferred display URL, falling back to the
// first media entry. An empty string means the record has nothing to show.
func (r NftRecord) DisplayURL() string {
	if r.URL != "" {
		return r.URL
	}
	for _, m := range r.Media {
		if m.URL != "" {
			return m.URL
		}
	}
	return ""
}

// ExtractDisplayURLs flattens one display URL per record, preserving order.
// Records without an identifier or without any usable URL are skipped rather
// than failing the whole batch.
func ExtractDisplayURLs(records []NftRecord) []string {
	urls := make([]string, 0, len(records))
	for _, r := range records {
		if r.Identifier == "" {
			continue
		}
		if url := r.DisplayURL(); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}
