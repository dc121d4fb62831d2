// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// LoginInformation is the credential pair carried by login, signup and the
// authenticated query endpoints.
type LoginInformation struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginOutcome discriminates the closed set of login/signup results.
type LoginOutcome int

const (
	// OutcomeSuccess carries the user id of the authenticated or newly
	// created account.
	OutcomeSuccess LoginOutcome = iota

	// OutcomeUsernameNotFound means no account has the given username.
	OutcomeUsernameNotFound

	// OutcomePasswordNotSet means the username resolved to an id but the
	// credential side-table has no entry for it. This signals a store
	// consistency violation, not a user error, and must never be collapsed
	// into OutcomeUsernameNotFound.
	OutcomePasswordNotSet

	// OutcomePasswordWrong means the supplied password did not match.
	OutcomePasswordWrong

	// OutcomeUsernameTaken means signup found the username already in use.
	OutcomeUsernameTaken
)

// LoginResult is the discriminated result of a login or signup attempt.
// Exactly one outcome is produced per attempt; UserID is meaningful only
// when Outcome is OutcomeSuccess.
type LoginResult struct {
	Outcome LoginOutcome
	UserID  uint32
}

// Success builds the payload variant.
func Success(id uint32) LoginResult {
	return LoginResult{Outcome: OutcomeSuccess, UserID: id}
}

// Wire names kept compatible with the original frontend, which switches on
// the serialized variant key.
const (
	wireSuccess          = "Success"
	wireUsernameNotFound = "UsernameNoExist"
	wirePasswordNotSet   = "PasswordNoExist"
	wirePasswordWrong    = "PasswordWrong"
	wireUsernameTaken    = "UsernameTaken"
)

// MarshalJSON renders the result in the externally-tagged enum form the
// web frontend expects: {"Success": <id>} for the payload variant and a
// bare string for the unit variants.
func (r LoginResult) MarshalJSON() ([]byte, error) {
	switch r.Outcome {
	case OutcomeSuccess:
		return json.Marshal(map[string]uint32{wireSuccess: r.UserID})
	case OutcomeUsernameNotFound:
		return json.Marshal(wireUsernameNotFound)
	case OutcomePasswordNotSet:
		return json.Marshal(wirePasswordNotSet)
	case OutcomePasswordWrong:
		return json.Marshal(wirePasswordWrong)
	case OutcomeUsernameTaken:
		return json.Marshal(wireUsernameTaken)
	default:
		return nil, fmt.Errorf("unknown login outcome %d", r.Outcome)
	}
}

// UnmarshalJSON accepts both wire forms produced by MarshalJSON.
func (r *LoginResult) UnmarshalJSON(data []byte) error {
	var unit string
	if err := json.Unmarshal(data, &unit); err == nil {
		switch unit {
		case wireUsernameNotFound:
			*r = LoginResult{Outcome: OutcomeUsernameNotFound}
		case wirePasswordNotSet:
			*r = LoginResult{Outcome: OutcomePasswordNotSet}
		case wirePasswordWrong:
			*r = LoginResult{Outcome: OutcomePasswordWrong}
		case wireUsernameTaken:
			*r = LoginResult{Outcome: OutcomeUsernameTaken}
		default:
			return fmt.Errorf("unknown login result %q", unit)
		}
		return nil
	}

	var payload map[string]uint32
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed login result: %w", err)
	}
	id, ok := payload[wireSuccess]
	if !ok {
		return fmt.Errorf("malformed login result: missing %q key", wireSuccess)
	}
	*r = Success(id)
	return nil
}

// String is used in logs; it never exposes credentials.
func (r LoginResult) String() string {
	switch r.Outcome {
	case OutcomeSuccess:
		return fmt.Sprintf("Success(%d)", r.UserID)
	case OutcomeUsernameNotFound:
		return wireUsernameNotFound
	case OutcomePasswordNotSet:
		return wirePasswordNotSet
	case OutcomePasswordWrong:
		return wirePasswordWrong
	case OutcomeUsernameTaken:
		return wireUsernameTaken
	default:
		return fmt.Sprintf("LoginOutcome(%d)", r.Outcome)
	}
}
