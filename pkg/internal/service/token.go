package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yeisme/uploadvault/pkg/configs"
)

// TokenIssuer 签发与校验 HS256 访问令牌. 令牌 subject 为用户 ID.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer 根据认证配置构造 TokenIssuer.
func NewTokenIssuer(cfg *configs.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.TokenSecret),
		ttl:    cfg.GetTokenTTL(),
	}
}

// TTL 返回令牌有效期.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue 为指定用户签发令牌.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(t.secret)
}

// ParseSubject 校验令牌并返回 subject（用户 ID）.
// 签名无效、过期或 subject 缺失均返回 ErrUnauthorized.
func (t *TokenIssuer) ParseSubject(tokenString string) (string, error) {
	claims := jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}

		return t.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if !token.Valid {
		return "", fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return "", fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}

	return claims.Subject, nil
}
