package trades_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-rs/horizon-go/api/trades"
)

var host = &url.URL{Scheme: "https", Host: "horizon.stellar.org"}

func TestAllURI(t *testing.T) {
	uri, err := trades.All().WithCursor("now").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/trades?cursor=now", uri.String())
}

func TestAssetFilters(t *testing.T) {
	uri, err := trades.All().
		WithBaseAsset("native", "", "").
		WithCounterAsset("credit_alphanum4", "USDC", "GISSUER").
		URI(host)
	require.NoError(t, err)

	q := uri.Query()
	assert.Equal(t, "native", q.Get("base_asset_type"))
	assert.False(t, q.Has("base_asset_code"))
	assert.False(t, q.Has("base_asset_issuer"))
	assert.Equal(t, "credit_alphanum4", q.Get("counter_asset_type"))
	assert.Equal(t, "USDC", q.Get("counter_asset_code"))
	assert.Equal(t, "GISSUER", q.Get("counter_asset_issuer"))
}

func TestOfferIDFilter(t *testing.T) {
	uri, err := trades.All().WithOfferID(1038593).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/trades?offer_id=1038593", uri.String())
}

func TestScopedURIs(t *testing.T) {
	uri, err := trades.ForAccount("GACCOUNT").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/accounts/GACCOUNT/trades", uri.String())

	uri, err = trades.ForOffer(1038593).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/offers/1038593/trades", uri.String())
}
