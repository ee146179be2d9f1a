// Copyright 2024 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suid

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
)

// parseUint32Fast parses the decimal representation of a uint32. Signs,
// whitespace and base prefixes are all rejected.
func parseUint32Fast(s string) (uint32, error) {
	sLen := len(s)
	if sLen < 1 {
		return 0, errors.New("zero length string")
	}
	if sLen > 10 {
		return 0, errors.New("string too long")
	}

	var n uint64
	for i, ch := range []byte(s) {
		d := ch - '0'
		if d > 9 {
			return 0, fmt.Errorf("invalid character '%s' at index %d", string(ch), i)
		}
		n = n*10 + uint64(d)
	}
	if n > math.MaxUint32 {
		return 0, errors.New("value out of range")
	}
	return uint32(n), nil
}

// parseIDList parses a list of numeric ids separated by commas and/or
// whitespace.
func parseIDList(s string) ([]uint32, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	ids := make([]uint32, 0, len(fields))
	for _, f := range fields {
		id, err := parseUint32Fast(f)
		if err != nil {
			return nil, fmt.Errorf("%q: %v", f, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
