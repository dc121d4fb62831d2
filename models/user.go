// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserIDMax bounds the user id space. Ids are drawn from [0, UserIDMax),
// which is 16^8, so every id renders as an 8-letter hex code.
const UserIDMax uint64 = 1 << 32

// User represents a registered account.
//
// The password is intentionally absent: credentials live in a side-table
// keyed by UserID at the persistence layer and must never be serialized
// together with the identity record (e.g. on the debug dump).
type User struct {
	// UserID is the unique numeric identity of the user, 0 <= id < 2^32.
	UserID uint32 `json:"id"`

	// Username is the unique login name. Stored case-sensitively;
	// search matches it case-insensitively.
	Username string `json:"username"`
}
