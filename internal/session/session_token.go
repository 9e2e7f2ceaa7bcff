package session

import (
	"time"

	sessionerrors "go-yourtask/internal/session/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer menandatangani session id menjadi token yang dikirim ke client.
// Token hanya membawa sid; identitas tetap dibaca dari Store.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *TokenIssuer) Issue(sid string) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
	}
	if i.ttl > 0 {
		claims["exp"] = now.Add(i.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", sessionerrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

func (i *TokenIssuer) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, sessionerrors.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return "", sessionerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", sessionerrors.ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", sessionerrors.ErrInvalidToken
	}
	return sid, nil
}
