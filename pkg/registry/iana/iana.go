// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package iana fetches and parses the IANA EPP Repository IDs registry.
package iana

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/epptools/eppids/internal/httpx"
	"github.com/epptools/eppids/internal/urlx"
)

var registryURL = urlx.MustParse("https://www.iana.org/assignments/epp-repository-ids/epp-repository-ids-1.csv")

// DefaultURL returns the published location of the registry CSV.
func DefaultURL() string {
	return registryURL.String()
}

// Registry serves the EPP Repository IDs registry.
type Registry interface {
	RepositoryIDs(context.Context) (io.ReadCloser, error)
}

// HTTPRegistry is a Registry backed by the IANA assignments site.
type HTTPRegistry struct {
	Client httpx.BasicClient
	// URL overrides the registry location when non-nil.
	URL *url.URL
}

var _ Registry = HTTPRegistry{}

// RepositoryIDs fetches the registry CSV. The caller owns the returned body.
// A single attempt is made; the context bounds the whole transfer.
func (r HTTPRegistry) RepositoryIDs(ctx context.Context) (io.ReadCloser, error) {
	u := registryURL
	if r.URL != nil {
		u = r.URL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building registry request")
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching registry")
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Wrap(errors.New(resp.Status), "fetching registry")
	}
	return resp.Body, nil
}
