// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QueryMatch is one row of a user search response: the numeric id, its
// 8-letter hex short code and the stored username.
type QueryMatch struct {
	UserID   uint32 `json:"id"`
	Code     string `json:"code"`
	Username string `json:"username"`
}

// QueryRequest is the body of an authenticated user search. Credentials may
// be omitted when the caller presents a Bearer token instead.
type QueryRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Query    string `json:"query"`
}
