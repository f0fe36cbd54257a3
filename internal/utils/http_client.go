package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for the client → privileged process link.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL that sends and accepts
// JSON. A non-positive timeout leaves resty's default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
