package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/types"
)

const defaultTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// TokenService validates access tokens issued by the backend with the shared HMAC secret. It can
// also mint tokens for local tooling and tests.
type TokenService struct {
	jwtSecret []byte
	ttl       time.Duration
}

func NewTokenService(jwtSecret string) *TokenService {
	return &TokenService{jwtSecret: []byte(jwtSecret), ttl: defaultTokenTTL}
}

// GenerateToken signs claims with HS256. Subject defaults to the user id and the expiry to 24h.
func (s *TokenService) GenerateToken(claims *types.TokenClaims) (string, error) {
	c := *claims
	now := time.Now()
	if c.Subject == "" && c.UserID != uuid.Nil {
		c.Subject = c.UserID.String()
	}
	if c.IssuedAt == nil {
		c.IssuedAt = jwt.NewNumericDate(now)
	}
	if c.ExpiresAt == nil {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &c)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks the signature and expiry. The user id comes from the user_id claim or,
// when that is absent, from the subject.
func (s *TokenService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == uuid.Nil {
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
		}
		claims.UserID = userID
	}
	return claims, nil
}
