package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTServiceI interface {
	GenerateToken(uid uuid.UUID) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are the claims of a caller token. UserID names the caller.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
