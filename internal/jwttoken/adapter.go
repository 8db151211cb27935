package jwttoken

import (
	"filings-gateway/pkg/platform/middleware/auth"
)

// Validator adapts JWTService to the auth middleware's TokenValidator port.
type Validator struct {
	svc *JWTService
}

// NewValidator wraps a JWTService for the middleware chain.
func NewValidator(svc *JWTService) *Validator {
	return &Validator{svc: svc}
}

// ValidateToken implements auth.TokenValidator.
func (v *Validator) ValidateToken(tokenString string) (*auth.TokenClaims, error) {
	claims, err := v.svc.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &auth.TokenClaims{
		AccountID: claims.AccountID,
		Roles:     claims.Roles,
	}, nil
}
