package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// credential fields. It is an input error (bad request), never one of
	// the business-rule login outcomes.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenCreationFailed is returned when JWT generation fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises all JWT validation failures so
	// callers do not need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
