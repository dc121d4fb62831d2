// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package code renders numeric user ids as 8-letter hexadecimal short codes
// and parses them back. Codes are what users exchange to find each other, so
// parsing tolerates the separator characters of display forms like
// "1a2b-3c4d" or "#1a2b3c4d".
package code

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is the number of hex letters in a short code. Together with the
// uint32 id space (16^8 ids) every id fits exactly.
const Length = 8

// Encode renders id as a lowercase hexadecimal string, zero-padded on the
// left to exactly [Length] characters.
//
// Values of Length digits or fewer always produce an 8-letter code; a wider
// input would produce a longer code without truncation or error, but the
// uint32 id space makes that unreachable for stored users.
func Encode(id uint32) string {
	return fmt.Sprintf("%0*x", Length, id)
}

// Sanitize removes every '#' and '-' from s and nothing else, so that
// display forms of a code normalize to the bare hex string.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "#", "")
	return strings.ReplaceAll(s, "-", "")
}

// IsValid reports whether s, after sanitizing, is exactly [Length]
// characters long and parses as hexadecimal.
func IsValid(s string) bool {
	_, ok := Decode(s)
	return ok
}

// Decode parses a short code back to the user id it encodes. The input is
// sanitized first; ok is false when the sanitized form is not exactly
// [Length] hex characters. Parsing is 32-bit wide to match Encode, so
// Decode(Encode(id)) == id for every id.
func Decode(s string) (id uint32, ok bool) {
	s = Sanitize(s)
	if len(s) != Length {
		return 0, false
	}

	parsed, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}

	return uint32(parsed), true
}
