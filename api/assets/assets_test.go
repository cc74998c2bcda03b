package assets_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-rs/horizon-go/api/assets"
)

func TestAllURIFilters(t *testing.T) {
	host := &url.URL{Scheme: "https", Host: "horizon.stellar.org"}

	uri, err := assets.All().WithAssetCode("USDC").WithAssetIssuer("GISSUER").WithLimit(1).URI(host)
	require.NoError(t, err)
	assert.Equal(t,
		"https://horizon.stellar.org/assets?asset_code=USDC&asset_issuer=GISSUER&limit=1",
		uri.String())
}
