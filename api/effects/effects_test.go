package effects_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-rs/horizon-go/api/effects"
)

var host = &url.URL{Scheme: "https", Host: "horizon.stellar.org"}

func TestURIs(t *testing.T) {
	uri, err := effects.All().WithCursor("now").WithLimit(3).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/effects?cursor=now&limit=3", uri.String())

	uri, err = effects.ForAccount("GACCOUNT").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/accounts/GACCOUNT/effects", uri.String())

	uri, err = effects.ForLedger(42007308).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/ledgers/42007308/effects", uri.String())

	uri, err = effects.ForOperation("180420943684833281").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/operations/180420943684833281/effects", uri.String())

	uri, err = effects.ForTransaction("23bf920c").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/transactions/23bf920c/effects", uri.String())
}
