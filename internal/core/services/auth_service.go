package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/config"
	"cmms-backend/internal/core/domain"
	"cmms-backend/internal/pkg/jwt"
	"cmms-backend/internal/pkg/password"

	"github.com/gofiber/fiber/v2/log"
)

// AuthService resolves principals and mints and verifies credentials
type AuthService struct {
	identityRepo repositories.IdentityRepository
	cfg          *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(identityRepo repositories.IdentityRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		identityRepo: identityRepo,
		cfg:          cfg,
	}
}

// LoginResult is returned on a successful authentication
type LoginResult struct {
	Token     string      `json:"token"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Authenticate probes the identity tables in domain.ResolutionOrder and
// returns a credential for the first table whose row matches both email and
// password. It never reveals which of the two was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, plain string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}

	for _, role := range domain.ResolutionOrder {
		identity, err := s.identityRepo.FindByEmail(ctx, role, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if !password.Verify(plain, identity.PasswordHash) {
			continue
		}

		ttl := s.cfg.TokenTTL()
		token, err := jwt.GenerateAccessToken(identity.ID, identity.Email, string(role), s.cfg.JWT.Secret, ttl)
		if err != nil {
			return nil, err
		}

		log.Infof("✅ %s logged in: %s", role, identity.Email)
		return &LoginResult{Token: token, Role: role, ExpiresAt: time.Now().Add(ttl)}, nil
	}

	return nil, domain.ErrInvalidCredentials
}

// Authorize validates an Authorization header value and returns the principal
// it asserts. It does not check roles; callers declare those per operation.
func (s *AuthService) Authorize(header string) (*domain.Principal, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := jwt.ValidateAccessToken(token, s.cfg.JWT.Secret)
	if err != nil {
		return nil, domain.ErrForbidden
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, domain.ErrForbidden
	}

	return &domain.Principal{ID: claims.ID, Email: claims.Email, Role: role}, nil
}

// ensureEmailFree returns ErrDuplicateEntry when any identity table holds email
func ensureEmailFree(ctx context.Context, repo repositories.IdentityRepository, email string) error {
	taken, err := repo.EmailTaken(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateEntry
	}
	return nil
}
