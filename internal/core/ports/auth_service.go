package ports

import (
	"context"

	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
)

// RegisterInput carries the registration payload. Role may be empty, in
// which case the service assigns domain.RoleUser.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UpdateAccountInput carries a partial profile edit; empty fields are left
// untouched. A non-empty Password is re-hashed before storage.
type UpdateAccountInput struct {
	FirstName string
	LastName  string
	Password  string
}

// AuthService is the authentication core: account registration, login and
// per-request token resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the email/password pair. origin identifies the caller
	// (client IP) for throttling purposes. Any credential failure maps to
	// domain.ErrInvalidCredentials; a tripped throttle to
	// domain.ErrTooManyAttempts.
	Login(ctx context.Context, email, password, origin string) (*domain.User, error)
	// ResolveToken turns a presented X-AUTH-TOKEN value into a principal.
	// It performs exactly one token lookup plus one identity re-fetch and
	// has no side effects. Failures are domain.ErrMissingToken (empty
	// value) or domain.ErrInvalidToken (no match, or store failure).
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	UpdateAccount(ctx context.Context, user *domain.User, input UpdateAccountInput) error
}

// LoginThrottle limits repeated login failures per identity/origin pair.
type LoginThrottle interface {
	// Allow reports whether another attempt may proceed.
	Allow(ctx context.Context, email, origin string) (bool, error)
	// Failure records a failed attempt.
	Failure(ctx context.Context, email, origin string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email, origin string) error
}
