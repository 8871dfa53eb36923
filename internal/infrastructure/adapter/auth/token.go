package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	domainerr "github.com/imnexerio/i2step-backend/internal/domain/error"
	"github.com/imnexerio/i2step-backend/internal/domain/port/core"
)

// Claims carries the identity embedded in an access token
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies short-lived HS256 access tokens. The
// domain layer never sees tokens; handlers exchange them for an
// entity.Identity at the edge.
type TokenManager struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewTokenManager creates a token manager with the given signing secret and
// token lifetime
func NewTokenManager(secret string, ttl time.Duration, timeProvider core.TimeProvider) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed access token for the given account
func (m *TokenManager) Issue(user *entity.User) (string, error) {
	now := m.timeProvider.Now()
	claims := Claims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the identity it
// carries. Expired, malformed or wrongly signed tokens all come back as
// ErrInvalidCredentials.
func (m *TokenManager) Verify(tokenString string) (entity.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))
	if err != nil || !token.Valid {
		return entity.Identity{}, domainerr.ErrInvalidCredentials
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return entity.Identity{}, domainerr.ErrInvalidCredentials
	}

	return entity.Identity{
		Username: claims.Username,
		Role:     role,
	}, nil
}
