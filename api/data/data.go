// Package data provides the request builder for account data entries.
package data

import (
	"net/url"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

// ForAccount creates a request to retrieve a single account data entry.
func ForAccount(accountID, key string) ForAccountRequest {
	return ForAccountRequest{accountID: accountID, key: key}
}

// ForAccountRequest requests one data entry of an account.
type ForAccountRequest struct {
	accountID string
	key       string
}

// URI implements horizon.Request.
func (r ForAccountRequest) URI(host *url.URL) (*url.URL, error) {
	return host.JoinPath("accounts", r.accountID, "data", r.key), nil
}

// ResponseType implements horizon.TypedRequest.
func (ForAccountRequest) ResponseType() resources.AccountData { return resources.AccountData{} }

var _ horizon.TypedRequest[resources.AccountData] = ForAccountRequest{}
