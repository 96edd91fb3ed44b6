// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

package iana

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/epptools/eppids/internal/httpx/httpxtest"
)

func TestHTTPRegistryRepositoryIDs(t *testing.T) {
	client := &httpxtest.MockClient{
		Response: &http.Response{StatusCode: 200, Body: httpxtest.Body(goodCSV)},
	}
	body, err := HTTPRegistry{Client: client}.RepositoryIDs(context.Background())
	if err != nil {
		t.Fatalf("RepositoryIDs: %v", err)
	}
	defer body.Close()
	b, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if diff := cmp.Diff(goodCSV, string(b)); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	wantURLs := []string{"https://www.iana.org/assignments/epp-repository-ids/epp-repository-ids-1.csv"}
	if diff := cmp.Diff(wantURLs, client.RequestedURLs); diff != "" {
		t.Errorf("requested URLs mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPRegistryErrors(t *testing.T) {
	testCases := []struct {
		name     string
		response *http.Response
		err      error
	}{
		{name: "transport failure", err: errors.New("connection refused")},
		{name: "not found", response: &http.Response{StatusCode: 404, Status: "404 Not Found", Body: httpxtest.Body("")}},
		{name: "server error", response: &http.Response{StatusCode: 503, Status: "503 Service Unavailable", Body: httpxtest.Body("")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &httpxtest.MockClient{Response: tc.response, Error: tc.err}
			if _, err := (HTTPRegistry{Client: client}).RepositoryIDs(context.Background()); err == nil {
				t.Fatal("RepositoryIDs succeeded, want error")
			}
		})
	}
}
