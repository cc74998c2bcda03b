package transactions_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/api/transactions"
)

var host = &url.URL{Scheme: "https", Host: "horizon.stellar.org"}

func TestAllURI(t *testing.T) {
	uri, err := transactions.All().WithCursor("now").WithLimit(5).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/transactions?cursor=now&limit=5", uri.String())
}

func TestSingleURI(t *testing.T) {
	uri, err := transactions.Single("23bf920c").URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/transactions/23bf920c", uri.String())
}

func TestForAccountURI(t *testing.T) {
	uri, err := transactions.ForAccount("GACCOUNT").WithOrder(horizon.OrderAscending).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/accounts/GACCOUNT/transactions?order=asc", uri.String())
}

func TestForLedgerURI(t *testing.T) {
	uri, err := transactions.ForLedger(42007308).URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/ledgers/42007308/transactions", uri.String())
}

func TestSubmitRequest(t *testing.T) {
	req := transactions.Submit("AAAABASE64==")

	uri, err := req.URI(host)
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org/transactions", uri.String())

	form, err := req.PostBody()
	require.NoError(t, err)
	assert.Equal(t, "AAAABASE64==", form.Get("tx"))
}
