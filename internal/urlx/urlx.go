// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

package urlx

import "net/url"

// MustParse parses rawURL and panics on error. Meant for package-level URL
// constants whose validity is a build invariant.
func MustParse(rawURL string) *url.URL {
	u, err := url.Parse(rawURL)
	if err != nil {
		panic(err)
	}
	return u
}
