package config

import "errors"

// validate checks the merged configuration for fields the server cannot run
// without. Defaults cover everything except the token signing key, which
// has no safe default.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, errNoTokenSignKey)
	}
	if c.Storage.UsersFile == "" {
		errs = append(errs, errNoUsersFile)
	}
	if c.Server.HTTPAddress == "" {
		errs = append(errs, errNoServerAddress)
	}

	return errors.Join(errs...)
}
