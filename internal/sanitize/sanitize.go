// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package sanitize constrains text destined for the published database or the
// diagnostic log to printable ASCII plus the legal identifier character set.
package sanitize

import (
	"strings"

	"github.com/epptools/eppids/internal/xmlchar"
)

// String replaces every rune outside printable ASCII (0x20-0x7E) and the
// legal identifier character set with '?'. Diagnostic text quoting raw input
// may get mangled by this; that is intentional, since everything written out
// must stay within the declared character set.
func String(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x20 && r <= 0x7E {
			return r
		}
		if xmlchar.IsLegal(r) {
			return r
		}
		return '?'
	}, s)
}
