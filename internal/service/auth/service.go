package auth

import (
	"log/slog"
	"time"
)

//go:generate moq -out token_issuer_mock_test.go -pkg auth . tokenIssuer

// tokenIssuer defines the JWT operations needed by the auth service.
type tokenIssuer interface {
	GenerateAdminToken() (string, time.Time, error)
}

// Service implements admin login. There is a single admin whose bcrypt
// password hash comes from configuration.
type Service struct {
	log          *slog.Logger
	passwordHash []byte
	tokens       tokenIssuer
}

// NewService creates a new auth service instance. An empty passwordHash
// disables login.
func NewService(logger *slog.Logger, passwordHash string, tokens tokenIssuer) *Service {
	return &Service{
		log:          logger.With("service", "auth"),
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

// Enabled reports whether password login is configured.
func (s *Service) Enabled() bool {
	return len(s.passwordHash) > 0
}
