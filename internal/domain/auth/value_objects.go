package auth

import (
	"errors"
	"strings"
)

var ErrMissingCredentials = errors.New("username and password are required")

// Credentials are taken as typed; login never applies the registration
// rules so older accounts keep working.
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Credentials{}, ErrMissingCredentials
	}
	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}
