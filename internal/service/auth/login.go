package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// Login checks the admin password and issues a bearer token.
// Returns ErrForbidden when login is not configured and ErrUnauthorized
// when the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if !s.Enabled() {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password)); err != nil {
		s.log.WarnContext(ctx, "admin login failed")
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.GenerateAdminToken()
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.Time("expires_at", expiresAt))
	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}
