package util

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds the pooled client shared by all fetches in a phase.
// Total and connect timeouts are both bounded so a hung endpoint can never
// stall a run.
func NewHTTPClient(totalTimeout, connectTimeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: totalTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
			TLSHandshakeTimeout: connectTimeout,
			MaxIdleConnsPerHost: 8,
		},
	}
}
