// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package cpref handles code-point-reference notation, the textual encoding
// of a Unicode string as a sequence of #xHHHH scalar-value tokens used by the
// IANA EPP Repository ID registry.
package cpref

import (
	"strconv"
	"strings"
	"unicode"
)

// IsWellFormed reports whether spec is one or more #xHHHH tokens, each with 4
// to 6 hex digits, separated and optionally surrounded by spaces.
func IsWellFormed(spec string) bool {
	rest := strings.Trim(spec, " ")
	if rest == "" {
		return false
	}
	for rest != "" {
		tok, tail := cutToken(rest)
		if !validToken(tok) {
			return false
		}
		rest = strings.TrimLeft(tail, " ")
	}
	return true
}

// Decode converts a code-point-reference string into the literal string it
// denotes: spaces are stripped and each #xHHHH token is replaced by its scalar
// value, in order. Decoding is purely mechanical; callers wanting validated
// input check IsWellFormed first. Tokens with out-of-range values or anything
// that is not a token decode to the replacement character.
func Decode(spec string) string {
	var b strings.Builder
	rest := strings.ReplaceAll(spec, " ", "")
	for rest != "" {
		tok, tail := cutToken(rest)
		n, err := strconv.ParseUint(strings.TrimPrefix(tok, "#x"), 16, 32)
		if !validToken(tok) || err != nil || n > unicode.MaxRune {
			b.WriteRune(unicode.ReplacementChar)
		} else {
			b.WriteRune(rune(n))
		}
		rest = tail
	}
	return b.String()
}

// cutToken splits off the leading #x token: "#x" plus the hex digits that
// follow it. Input with no leading token is returned whole so the caller can
// reject it.
func cutToken(s string) (tok, rest string) {
	if !strings.HasPrefix(s, "#x") {
		return s, ""
	}
	i := 2
	for i < len(s) && isHexDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func validToken(tok string) bool {
	hex, ok := strings.CutPrefix(tok, "#x")
	if !ok {
		return false
	}
	if len(hex) < 4 || len(hex) > 6 {
		return false
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
