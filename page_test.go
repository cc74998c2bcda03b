package horizon_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	horizon "github.com/aurora-rs/horizon-go"
)

type pageRecord struct {
	ID          string `json:"id"`
	PagingToken string `json:"paging_token"`
}

const pageJSON = `{
  "_links": {
    "self": {"href": "https://horizon.stellar.org/ledgers?cursor=&limit=2"},
    "next": {"href": "https://horizon.stellar.org/ledgers?cursor=8589934592&limit=2"},
    "prev": {"href": "https://horizon.stellar.org/ledgers?cursor=4294967296&limit=2&order=desc"}
  },
  "_embedded": {
    "records": [
      {"id": "a", "paging_token": "4294967296"},
      {"id": "b", "paging_token": "8589934592"}
    ]
  }
}`

func TestPageUnmarshalFlattensEmbedding(t *testing.T) {
	var page horizon.Page[pageRecord]
	require.NoError(t, json.Unmarshal([]byte(pageJSON), &page))

	require.Len(t, page.Records, 2)
	assert.Equal(t, "a", page.Records[0].ID)
	require.NotNil(t, page.Links)
	assert.Contains(t, page.Links.Next.Href, "cursor=8589934592")
}

func TestPageRoundTrip(t *testing.T) {
	var page horizon.Page[pageRecord]
	require.NoError(t, json.Unmarshal([]byte(pageJSON), &page))

	out, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, pageJSON, string(out))
}

func TestPageMarshalEmpty(t *testing.T) {
	out, err := json.Marshal(horizon.Page[pageRecord]{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_embedded":{"records":[]}}`, string(out))
}

func TestPageNextCursor(t *testing.T) {
	var page horizon.Page[pageRecord]
	require.NoError(t, json.Unmarshal([]byte(pageJSON), &page))

	cursor := page.NextCursor(func(r pageRecord) string { return r.PagingToken })
	assert.Equal(t, "8589934592", cursor)

	empty := horizon.Page[pageRecord]{}
	assert.Empty(t, empty.NextCursor(func(r pageRecord) string { return r.PagingToken }))
}
