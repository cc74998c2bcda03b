// Package root provides the request builder for the Horizon root endpoint.
package root

import (
	"net/url"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

// Root creates a request to retrieve the Horizon instance description.
func Root() RootRequest {
	return RootRequest{}
}

// RootRequest requests the root endpoint.
type RootRequest struct{}

// URI implements horizon.Request.
func (RootRequest) URI(host *url.URL) (*url.URL, error) {
	u := *host
	return &u, nil
}

// ResponseType implements horizon.TypedRequest.
func (RootRequest) ResponseType() resources.Root { return resources.Root{} }

var _ horizon.TypedRequest[resources.Root] = RootRequest{}
