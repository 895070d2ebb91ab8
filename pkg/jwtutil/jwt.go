package jwtutil

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims represents the claims of tokens issued by the auth service
type UserClaims struct {
	Email      string `json:"email"`
	UserID     uint   `json:"user_id"`
	TenantID   *uint  `json:"tenant_id,omitempty"`
	TenantName string `json:"tenant_name,omitempty"`
	Role       string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HMAC-signed bearer tokens
type Verifier struct {
	secret []byte
}

func NewVerifier(signingKey string) *Verifier {
	return &Verifier{secret: []byte(signingKey)}
}

// ValidateToken validates and parses the JWT token
func (v *Verifier) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token claims")
}

