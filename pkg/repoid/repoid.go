// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package repoid validates EPP Repository Identifier registry entries.
//
// The registry encodes each identifier twice in one CSV field: once as a
// literal string and once in code-point-reference notation, e.g.
//
//	MX,#x004D #x0058
//
// Validation cross-checks the two representations and applies the length and
// character-set rules for repository identifiers. A record that fails any
// check is rejected with a diagnostic comment; rejection is never fatal to
// the run.
package repoid

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/epptools/eppids/internal/cpref"
	"github.com/epptools/eppids/internal/sanitize"
	"github.com/epptools/eppids/internal/xmlchar"
)

// MaxIDLength is the maximum identifier length in Unicode scalar values.
const MaxIDLength = 8

// Record is the outcome of validating one registry entry: either an accepted
// identifier or a rejection comment destined for the published database.
type Record struct {
	// ID is the accepted identifier. Empty when rejected.
	ID string
	// Comment is the rejection comment, starting with "# ". Empty when
	// accepted.
	Comment string
}

// Accepted reports whether the record carries a valid identifier.
func (r Record) Accepted() bool {
	return r.Comment == ""
}

// Line returns the text to publish for this record: the identifier itself,
// or the rejection comment.
func (r Record) Line() string {
	if r.Accepted() {
		return r.ID
	}
	return r.Comment
}

func accept(id string) Record {
	return Record{ID: id}
}

// reject builds a rejection record and emits the diagnostic on the log side
// channel. Both the comment and the logged text are sanitized so that raw
// registry bytes never reach the output file or the terminal.
func reject(recordNum int, format string, args ...any) Record {
	msg := sanitize.String(fmt.Sprintf(format, args...))
	log.Printf("rejecting record %d: %s", recordNum, msg)
	return Record{Comment: fmt.Sprintf("# record %d: %s", recordNum, msg)}
}

// Validate checks one raw registry field holding the dual representation of
// an identifier. The checks run in a fixed order and stop at the first
// failure:
//
//  1. split the field into literal and code-point spec
//  2. check the code-point spec grammar
//  3. require the decoded spec to equal the literal
//  4. bound the identifier length
//  5. require every code point to be legal
//
// recordNum is the 1-based CSV record number, counting from the header, and
// is quoted in diagnostics.
func Validate(field string, recordNum int) Record {
	literal, spec, ok := splitField(field)
	if !ok {
		return reject(recordNum, "cannot parse field %q", field)
	}
	if !cpref.IsWellFormed(spec) {
		return reject(recordNum, "malformed code point sequence %q", spec)
	}
	if decoded := cpref.Decode(spec); decoded != literal {
		return reject(recordNum, "identifier %q does not match its code points %q (decoded %q)", literal, spec, decoded)
	}
	if n := utf8.RuneCountInString(literal); n > MaxIDLength {
		return reject(recordNum, "identifier %q is too long: %d code points, limit %d", literal, n, MaxIDLength)
	}
	for _, r := range literal {
		if !xmlchar.IsLegal(r) {
			return reject(recordNum, "identifier %q contains illegal code point %U", literal, r)
		}
	}
	return accept(literal)
}

// splitField separates "<literal>,<codepoint-spec>". The literal may not
// contain commas or spaces; whitespace between the literal and the comma is
// tolerated. The code-point part keeps its surrounding spaces for the
// grammar check.
func splitField(field string) (literal, spec string, ok bool) {
	literal, spec, ok = strings.Cut(field, ",")
	if !ok {
		return "", "", false
	}
	literal = strings.TrimRight(literal, " ")
	if literal == "" || strings.ContainsAny(literal, " ,") {
		return "", "", false
	}
	return literal, spec, true
}
