package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

const apiTokenBytes = 20 // 40 hex chars, same shape as the tokens the front office already stores

// AuthService implements registration, login and token resolution.
type AuthService struct {
	users    ports.UserRepository
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, throttle: throttle, logger: logger}
}

// Register creates a new account. The requested role must belong to the
// allow-list; when empty it defaults to ROLE_USER. The password is bcrypt
// hashed and an opaque API token is minted once, here and nowhere else.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.IsAllowedRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		APIToken:  generateAPIToken(),
		Roles:     []string{role},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", role).Msg("user registered")
	return user, nil
}

// Login verifies the email/password pair against the stored hash. The
// existing API token is returned as-is: logging in never mints a new one.
func (s *AuthService) Login(ctx context.Context, email, password, origin string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	allowed, err := s.throttle.Allow(ctx, email, origin)
	if err != nil {
		// Throttle backend trouble must not lock everyone out.
		s.logger.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
	} else if !allowed {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Err(err).Msg("user lookup failed during login")
		}
		_ = s.throttle.Failure(ctx, email, origin)
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		_ = s.throttle.Failure(ctx, email, origin)
		return nil, domain.ErrInvalidCredentials
	}

	_ = s.throttle.Reset(ctx, email, origin)
	return user, nil
}

// ResolveToken maps a presented token to a principal. One exact-match token
// lookup, then one identity re-fetch by email; no writes, no retries. Store
// failures surface as ErrInvalidToken so callers answer a uniform 401 and
// nothing about the backend leaks.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	claimant, err := s.users.FindByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Err(err).Msg("token lookup failed")
		}
		return nil, domain.ErrInvalidToken
	}

	// The token row only proves the claim; the principal attached to the
	// request is re-fetched by its identifier.
	principal, err := s.users.FindByEmail(ctx, claimant.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Err(err).Msg("identity lookup failed")
		}
		return nil, domain.ErrInvalidToken
	}

	return principal, nil
}

// UpdateAccount applies a partial profile edit to user and persists it.
func (s *AuthService) UpdateAccount(ctx context.Context, user *domain.User, input ports.UpdateAccountInput) error {
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

// generateAPIToken returns 40 hex characters from crypto/rand. Uniqueness
// is ultimately enforced by the store's unique index on api_token.
func generateAPIToken() string {
	b := make([]byte, apiTokenBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process is in serious trouble.
		panic("auth: cannot read random bytes: " + err.Error())
	}
	return hex.EncodeToString(b)
}
