package usecase

import (
	"parking-app/internal/domain/user"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrTokenSubjectMismatch = errs.New("token subject does not match user id")

type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenParser interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type tokenValidatorImpl struct {
	parser tokenParser
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{parser: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.parser.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	// Tokens minted before Subject was set carry an empty subject.
	if claims.Subject != "" && claims.Subject != claims.UserID.String() {
		return uuid.Nil, "", ErrTokenSubjectMismatch
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "token role")
	}

	return claims.UserID, role, nil
}
