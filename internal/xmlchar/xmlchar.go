// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

// Package xmlchar compiles the XML 1.0 Letter/Digit character classes used to
// constrain EPP Repository Identifiers.
package xmlchar

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Identifier is the set of code points legal in an EPP Repository Identifier.
var Identifier = mustCompile(identifierTable)

// IsLegal reports whether r may appear in an EPP Repository Identifier.
func IsLegal(r rune) bool {
	return unicode.Is(Identifier, r)
}

type span struct {
	lo, hi rune
}

// compile parses a declarative character-class table into a RangeTable. Lines
// are blank, #-comments, or |-separated tokens of the forms #xHHHH and
// [#xHHHH-#xHHHH] with 4 to 6 hex digits. A token matching neither form is an
// error: the table is version-controlled, so this is a build defect rather
// than bad input.
func compile(table string) (*unicode.RangeTable, error) {
	var spans []span
	for _, line := range strings.Split(table, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Comment lines start with "#" but never "#x".
		if strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#x") {
			continue
		}
		for _, tok := range strings.Split(line, "|") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			s, err := parseToken(tok)
			if err != nil {
				return nil, err
			}
			spans = append(spans, s)
		}
	}
	if len(spans) == 0 {
		return nil, errors.New("character-class table is empty")
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	var rt unicode.RangeTable
	for _, s := range spans {
		switch {
		case s.hi <= 0xFFFF:
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(s.lo), Hi: uint16(s.hi), Stride: 1})
		case s.lo <= 0xFFFF:
			// Straddles the BMP boundary; RangeTable keeps 16 and 32 bit
			// ranges apart.
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(s.lo), Hi: 0xFFFF, Stride: 1})
			rt.R32 = append(rt.R32, unicode.Range32{Lo: 0x10000, Hi: uint32(s.hi), Stride: 1})
		default:
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(s.lo), Hi: uint32(s.hi), Stride: 1})
		}
	}
	for i, r := range rt.R16 {
		if r.Hi <= unicode.MaxLatin1 {
			rt.LatinOffset = i + 1
		}
	}
	return &rt, nil
}

// parseToken parses one #xHHHH or [#xHHHH-#xHHHH] token.
func parseToken(tok string) (span, error) {
	if strings.HasPrefix(tok, "[") {
		if !strings.HasSuffix(tok, "]") {
			return span{}, errors.Errorf("malformed range token %q", tok)
		}
		lo, hi, ok := strings.Cut(tok[1:len(tok)-1], "-")
		if !ok {
			return span{}, errors.Errorf("malformed range token %q", tok)
		}
		l, err := parsePoint(lo)
		if err != nil {
			return span{}, errors.Wrapf(err, "malformed range token %q", tok)
		}
		h, err := parsePoint(hi)
		if err != nil {
			return span{}, errors.Wrapf(err, "malformed range token %q", tok)
		}
		if l > h {
			return span{}, errors.Errorf("inverted range token %q", tok)
		}
		return span{lo: l, hi: h}, nil
	}
	p, err := parsePoint(tok)
	if err != nil {
		return span{}, err
	}
	return span{lo: p, hi: p}, nil
}

// parsePoint parses a single #xHHHH code-point token, 4 to 6 hex digits.
func parsePoint(tok string) (rune, error) {
	hex, ok := strings.CutPrefix(tok, "#x")
	if !ok || len(hex) < 4 || len(hex) > 6 {
		return 0, errors.Errorf("malformed code-point token %q", tok)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Errorf("malformed code-point token %q", tok)
	}
	if n > unicode.MaxRune {
		return 0, errors.Errorf("code point out of range in token %q", tok)
	}
	return rune(n), nil
}

func mustCompile(table string) *unicode.RangeTable {
	rt, err := compile(table)
	if err != nil {
		panic(err)
	}
	return rt
}
