// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

package xmlchar

import (
	"testing"
	"unicode"
)

func TestIsLegal(t *testing.T) {
	testCases := []struct {
		name string
		r    rune
		want bool
	}{
		{name: "ASCII upper", r: 'M', want: true},
		{name: "ASCII lower", r: 'z', want: true},
		{name: "ASCII digit", r: '7', want: true},
		{name: "Latin-1 letter", r: 'é', want: true},
		{name: "Greek letter", r: 'Ω', want: true},
		{name: "CJK ideograph", r: '中', want: true},
		{name: "Hangul syllable", r: '한', want: true},
		{name: "Arabic-Indic digit", r: '٣', want: true},
		{name: "space", r: ' ', want: false},
		{name: "hyphen", r: '-', want: false},
		{name: "underscore", r: '_', want: false},
		{name: "control", r: 0x1F, want: false},
		{name: "emoji", r: '😀', want: false},
		{name: "multiplication sign", r: 0x00D7, want: false},
		{name: "combining mark", r: 0x0300, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLegal(tc.r); got != tc.want {
				t.Errorf("IsLegal(%q) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	rt, err := compile("# heading\n#x0041 | [#x0061-#x007A]\n\n[#x10000-#x10FFF]\n")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	for r, want := range map[rune]bool{'A': true, 'B': false, 'a': true, 'z': true, 0x10000: true, 0x11000: false} {
		if got := unicode.Is(rt, r); got != want {
			t.Errorf("Is(%#x) = %v, want %v", r, got, want)
		}
	}
}

func TestCompileRejectsMalformedTokens(t *testing.T) {
	for _, table := range []string{
		"#x41",                // too few hex digits
		"#x0000041",           // too many hex digits
		"[#x0041-#x005A",      // unterminated range
		"[#x0041]",            // range without separator
		"[#x005A-#x0041]",     // inverted range
		"#y0041",              // bad prefix
		"#x004G",              // bad hex digit
		"",                    // empty table
		"# only a comment\n#", // no tokens at all
	} {
		if _, err := compile(table); err == nil {
			t.Errorf("compile(%q) succeeded, want error", table)
		}
	}
}

func TestIdentifierTableCompiles(t *testing.T) {
	if Identifier == nil || len(Identifier.R16) == 0 {
		t.Fatal("built-in identifier table did not compile")
	}
	// BaseChar, Ideographic and Digit each contribute known members.
	for _, r := range []rune{'A', '0', 0x4E00, 0x3007, 0x0F20, 0xAC00} {
		if !unicode.Is(Identifier, r) {
			t.Errorf("expected %#x to be legal", r)
		}
	}
}
