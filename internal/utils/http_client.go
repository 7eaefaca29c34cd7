package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so all resty methods are available
// directly. The remote store adapter configures the embedded client with its
// base URL and request timeout after construction.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own connection
// pool and default resty configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
