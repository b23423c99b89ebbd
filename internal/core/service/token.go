package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenCodec issues and verifies signed session tokens. The signing secret and
// lifetime are fixed at construction; there is no process-wide key state.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id and role, valid for the codec's
// configured lifetime.
func (tc *TokenCodec) Issue(userID string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(tc.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(tc.secret)
}

// Verify checks the token's signature and expiry and returns the embedded
// identity. Any failure, including an unexpected signing algorithm, is
// reported as domain.ErrInvalidToken.
func (tc *TokenCodec) Verify(token string) (userID string, role domain.Role, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", "", domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	if sub == "" {
		return "", "", domain.ErrInvalidToken
	}

	return sub, domain.Role(roleStr), nil
}
