package utils

import (
	"github.com/go-resty/resty/v2"
)

// userAgent identifies the sync client to the remote API.
const userAgent = "zsync/1"

// HTTPClient is the resty client shared by the server adapter.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that sends JSON and the zsync user agent.
// Retries are left to the caller.
func NewHTTPClient() *HTTPClient {
	c := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	return &HTTPClient{Client: c}
}
