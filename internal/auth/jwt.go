package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	adminSubject = "admin"
	adminRole    = "admin"
)

// ErrInvalidToken is returned for any token that does not prove admin access.
var ErrInvalidToken = errors.New("invalid admin token")

// JWTManager issues and validates the bearer tokens of the single admin.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

type adminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateAdminToken creates a signed HS256 JWT for the admin and returns
// it with its expiry time. Every token carries a fresh ID.
func (m *JWTManager) GenerateAdminToken() (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminSubject,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: adminRole,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateAdminToken parses a token and checks signature, expiry, issuer,
// subject and role. All failures wrap ErrInvalidToken.
func (m *JWTManager) ValidateAdminToken(tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithSubject(adminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*adminClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}
	if claims.Role != adminRole {
		return fmt.Errorf("%w: role %q", ErrInvalidToken, claims.Role)
	}
	return nil
}
