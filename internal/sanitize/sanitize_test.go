// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

package sanitize

import "testing"

func TestString(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain ascii untouched", in: "# record 3: no good", want: "# record 3: no good"},
		{name: "legal unicode kept", in: "résumé中文", want: "résumé中文"},
		{name: "emoji replaced", in: "id😀x", want: "id?x"},
		{name: "control replaced", in: "a\x1bb\tc", want: "a?b?c"},
		{name: "del replaced", in: "a\x7fb", want: "a?b"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := String(tc.in); got != tc.want {
				t.Errorf("String(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
