// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package httpxtest provides a mock httpx.BasicClient for tests.
package httpxtest

import (
	"bytes"
	"io"
	"net/http"
)

// MockClient serves a canned response or error for every request and records
// the URLs it was asked for.
type MockClient struct {
	Response *http.Response
	Error    error

	// RequestedURLs holds the URL of every request seen, in order.
	RequestedURLs []string
}

// Do records the request URL and returns the canned response.
func (m *MockClient) Do(req *http.Request) (*http.Response, error) {
	m.RequestedURLs = append(m.RequestedURLs, req.URL.String())
	return m.Response, m.Error
}

// Body wraps a string as a response body.
func Body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}
