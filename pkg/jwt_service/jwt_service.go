package jwtservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/levelup/internal/api"
	errorvalues "github.com/limbo/levelup/internal/error_values"
)

const defaultTokenTTL = time.Hour

type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string) *JWTService {
	return NewWithTTL(secret, defaultTokenTTL)
}

func NewWithTTL(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken signs a caller token. Tokens are normally issued by the auth service
// sharing the secret; this is used by the admin CLI and tests.
func (s *JWTService) GenerateToken(uid uuid.UUID) (string, error) {
	now := time.Now()
	claims := &api.JWTClaims{
		UserID: uid.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenSignatureInvalid) ||
			errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, errors.Join(errorvalues.ErrInvalidToken, err)
		}
		return nil, errors.New("token parsing error: " + err.Error())
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
