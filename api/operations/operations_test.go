package operations_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/api/operations"
)

var host = &url.URL{Scheme: "https", Host: "horizon.stellar.org"}

func TestSingleURI(t *testing.T) {
	uri, err := operations.Single("180420943684833281").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/operations/180420943684833281", uri.String())

	uri, err = operations.Single("180420943684833281").WithJoin(horizon.JoinTransactions).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/operations/180420943684833281?join=transactions", uri.String())
}

func TestAllURIFilters(t *testing.T) {
	uri, err := operations.All().
		WithIncludeFailed(true).
		WithJoin(horizon.JoinTransactions).
		WithCursor("now").
		URI(host)
	require.NoError(t, err)
	assert.Equal(t,
		"https://horizon.stellar.org/operations?cursor=now&include_failed=true&join=transactions",
		uri.String())

	// include_failed=false is sent explicitly when set.
	uri, err = operations.All().WithIncludeFailed(false).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/operations?include_failed=false", uri.String())
}

func TestScopedURIs(t *testing.T) {
	uri, err := operations.ForAccount("GACCOUNT").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/accounts/GACCOUNT/operations", uri.String())

	uri, err = operations.ForLedger(42007308).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/ledgers/42007308/operations", uri.String())

	uri, err = operations.ForTransaction("23bf920c").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/transactions/23bf920c/operations", uri.String())
}
