package usecase

import (
	"booking-api/internal/pkg/jwt"
)

// TokenValidator is the seam between the HTTP middleware and the token
// implementation, so handlers can be tested without signing real tokens.
type TokenValidator interface {
	ValidateToken(token string) (role string, err error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (string, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}
