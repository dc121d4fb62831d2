package config

import "errors"

var (
	errNoTokenSignKey  = errors.New("no token sign key provided")
	errNoUsersFile     = errors.New("no users document path provided")
	errNoServerAddress = errors.New("no server address provided")
)
