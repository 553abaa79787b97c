package domain

import "errors"

var (
	// ErrMissingToken: the authenticator ran but no usable token value was given.
	ErrMissingToken = errors.New("no API token provided")
	// ErrInvalidToken: a token was presented but matches no stored user.
	ErrInvalidToken = errors.New("invalid API token")
	// ErrInvalidCredentials: login identity/password pair did not check out.
	ErrInvalidCredentials = errors.New("missing credentials")
	// ErrInvalidRole: registration asked for a role outside the allow-list.
	ErrInvalidRole = errors.New("role non autorisé")
	// ErrTooManyAttempts: login throttle tripped for this identity/origin.
	ErrTooManyAttempts = errors.New("too many login attempts")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// ErrNotFound is the generic missing-resource error for CRUD lookups.
	ErrNotFound = errors.New("resource not found")
)
