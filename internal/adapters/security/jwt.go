package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/auth"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// Claims is the token payload
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 bearer tokens
type JWTService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	clock    shared.Clock
}

// NewJWTService creates a token service. A nil clock uses the system time.
func NewJWTService(secret, issuer, audience string, ttl time.Duration, clock shared.Clock) *JWTService {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &JWTService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		clock:    clock,
	}
}

// Issue signs a token carrying the user's identity and role
func (s *JWTService) Issue(u *user.User) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Username: u.Username,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, issuer, audience and lifetime and returns the caller
func (s *JWTService) Verify(token string) (auth.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.Principal{}, shared.NewUnauthorizedError("token has expired")
		}
		return auth.Principal{}, shared.NewUnauthorizedError("invalid token")
	}
	if !parsed.Valid {
		return auth.Principal{}, shared.NewUnauthorizedError("invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return auth.Principal{}, shared.NewUnauthorizedError("invalid token subject")
	}

	return auth.Principal{
		UserID:   id,
		Username: claims.Username,
		Role:     user.Role(claims.Role),
	}, nil
}
