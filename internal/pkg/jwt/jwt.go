package jwt

import (
	"errors"
	"fmt"
	"time"

	"parking-app/internal/domain/user"
	"parking-app/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is stamped on every access token and required on validation.
const Issuer = "parking-app"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 access tokens.
type Service struct {
	secret   []byte
	lifetime time.Duration
	parser   *jwt.Parser
}

func NewService(secret string, lifetime time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

func NewServiceFromConfig(cfg config.JWTConfig) (*Service, error) {
	lifetime, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION %q: %w", cfg.Duration, err)
	}
	if cfg.Secret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	return NewService(cfg.Secret, lifetime), nil
}

// TokenDuration is also the access-token cookie lifetime.
func (s *Service) TokenDuration() time.Duration {
	return s.lifetime
}

func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	issuedAt := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.lifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken reports ErrExpiredToken for an otherwise good token past its
// expiry and ErrInvalidToken for everything else.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, !token.Valid:
		return nil, ErrInvalidToken
	}

	if claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	if _, err := user.NewRole(claims.Role); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
