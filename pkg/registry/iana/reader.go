// Copyright 2026 The eppids Authors
// SPDX-License-Identifier: Apache-2.0

package iana

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Header is the fixed column set of the registry CSV. Any deviation means
// the upstream format changed and the run must abort.
var Header = []string{"EPP Repository ID", "Change Controller", "Reference/Contact", "Registration Date"}

// Reader reads the registry CSV one normalized record at a time.
//
// The registry file is line-oriented: every record sits on its own line, so
// each line is decoded, normalized and CSV-parsed independently. Structural
// problems (bad encoding, stray control bytes, malformed CSV, a header that
// does not match Header) are errors; the upstream source is corrupt and
// there is no safe recovery.
type Reader struct {
	br *bufio.Reader
	// num is the 1-based record number, counting the header as record 1.
	num      int
	header   bool
	done     bool
	dataSeen bool
}

// NewReader wraps the raw registry bytes.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// readLine reads and normalizes one raw line. It returns io.EOF only when no
// bytes remain.
func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading registry")
	}
	if !utf8.ValidString(line) {
		return "", errors.New("non-unicode character found in registry data")
	}
	line = strings.TrimRight(line, "\r\n")
	line = strings.ReplaceAll(line, "\t", " ")
	if i := strings.IndexFunc(line, func(c rune) bool { return c < 0x20 }); i >= 0 {
		return "", errors.Errorf("control character %#x embedded in registry data", line[i])
	}
	return line, nil
}

// readRecord returns the trimmed fields of the next line. blank is true when
// the line is empty or every field trims to nothing.
func (r *Reader) readRecord() (fields []string, blank bool, err error) {
	line, err := r.readLine()
	if err != nil {
		return nil, false, err
	}
	r.num++
	if strings.TrimSpace(line) == "" {
		return nil, true, nil
	}
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	fields, err = cr.Read()
	if err != nil {
		return nil, false, errors.Wrapf(err, "malformed CSV on record %d", r.num)
	}
	blank = true
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
		if fields[i] != "" {
			blank = false
		}
	}
	if blank {
		return nil, true, nil
	}
	return fields, false, nil
}

// ReadHeader consumes records up to and including the header line. The first
// non-blank record must equal Header column by column.
func (r *Reader) ReadHeader() error {
	if r.header {
		return errors.New("header already read")
	}
	for {
		fields, blank, err := r.readRecord()
		if err == io.EOF {
			return errors.New("premature end of registry data: no header")
		}
		if err != nil {
			return err
		}
		if blank {
			continue
		}
		for i, want := range Header {
			if i >= len(fields) {
				return errors.Errorf("header column %d missing: expected %q", i+1, want)
			}
			if fields[i] != want {
				return errors.Errorf("header column %d: expected %q, got %q", i+1, want, fields[i])
			}
		}
		if len(fields) > len(Header) {
			return errors.Errorf("unexpected header column %d: %q", len(Header)+1, fields[len(Header)])
		}
		// Record numbering counts from the header, ignoring anything above it.
		r.num = 1
		r.header = true
		return nil
	}
}

// Next returns the identifier field of the next data record along with its
// record number. Iteration ends at the first blank record or at end of
// stream, after which Next returns io.EOF. A registry with a header but no
// data records is an error.
func (r *Reader) Next() (id string, num int, err error) {
	if !r.header {
		return "", 0, errors.New("header not read")
	}
	if r.done {
		return "", 0, io.EOF
	}
	fields, blank, err := r.readRecord()
	if err == io.EOF || (err == nil && blank) {
		r.done = true
		if !r.dataSeen {
			return "", 0, errors.New("premature end of registry data: no records")
		}
		return "", 0, io.EOF
	}
	if err != nil {
		return "", 0, err
	}
	if fields[0] == "" {
		return "", 0, errors.Errorf("unexpected empty ID on record %d", r.num)
	}
	r.dataSeen = true
	return fields[0], r.num, nil
}
