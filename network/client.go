// Package network provides a pre-configured, optimized HTTP client for concurrent provider communication.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// Its timeout bounds every outbound call a request handler can make, so a dead upstream
// cannot pin an API request indefinitely.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 20 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
