package usecase

import (
	"rental-core/internal/domain/user"
	"rental-core/internal/pkg/jwt"
	"rental-core/internal/usecase/shared"

	"github.com/cockroachdb/errors"
)

// TokenValidator resolves a bearer or cookie token to the acting party.
type TokenValidator interface {
	Authenticate(token string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) Authenticate(token string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(token)
	if err != nil {
		return shared.Actor{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errors.Mark(errors.Wrapf(err, "token for %s", claims.UserID), jwt.ErrInvalidToken)
	}
	return shared.Actor{ID: claims.UserID, Role: role}, nil
}
