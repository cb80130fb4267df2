package core

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDisplayURLs_Empty(t *testing.T) {
	assert.Empty(t, ExtractDisplayURLs(nil))
	assert.Empty(t, ExtractDisplayURLs([]NftRecord{}))
}

func TestExtractDisplayURLs_SkipsMalformed(t *testing.T) {
	records := []NftRecord{
		{Identifier: "ART-01", URL: "https://media/1.png"},
		{URL: "https://media/orphan.png"}, // no identifier
		{Identifier: "ART-02", Media: []NftMedia{{URL: "https://media/2.png"}}},
		{Identifier: "ART-03"}, // no URL anywhere
		{Identifier: "ART-04", URL: "https://media/4.png"},
	}

	urls := ExtractDisplayURLs(records)

	assert.Equal(t, []string{
		"https://media/1.png",
		"https://media/2.png",
		"https://media/4.png",
	}, urls)
}

func TestNftRecord_DisplayURLPrefersDirectURL(t *testing.T) {
	r := NftRecord{
		Identifier: "ART-01",
		URL:        "https://media/direct.png",
		Media:      []NftMedia{{URL: "https://media/media.png"}},
	}
	assert.Equal(t, "https://media/direct.png", r.DisplayURL())
}

func TestNftRecord_DecodeIndexerPayload(t *testing.T) {
	payload := `{
		"identifier": "ART-abc123-01",
		"collection": "ART-abc123",
		"name": "First",
		"url": "https://media.locki.io/nfts/1.png",
		"media": [{"url": "https://media.locki.io/nfts/1.png", "thumbnailUrl": "https://media.locki.io/thumbs/1.png", "fileType": "image/png"}],
		"balance": "2"
	}`

	var r NftRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &r))

	assert.Equal(t, "ART-abc123-01", r.Identifier)
	assert.Equal(t, "ART-abc123", r.Collection)
	assert.True(t, r.Balance.Equal(decimal.NewFromInt(2)))
}
