package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users   ports.UserRepository
	codec   *TokenCodec
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

// NewAuthService wires the credential store, token codec, and an optional
// login limiter (nil disables throttling).
func NewAuthService(users ports.UserRepository, codec *TokenCodec, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, limiter: limiter, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", string(role)).Msg("user registered")
	return created, nil
}

// Login authenticates the credentials and issues a session token. An unknown
// username and a wrong password produce the same error so callers cannot
// enumerate accounts. remoteAddr scopes the attempt budget so one caller
// cannot exhaust it for a username from elsewhere.
func (s *AuthService) Login(ctx context.Context, username, password, remoteAddr string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, limiterKey(username, remoteAddr))
		if err != nil {
			// Limiter outage must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func limiterKey(username, remoteAddr string) string {
	if remoteAddr == "" {
		return username
	}
	return username + "@" + remoteAddr
}
