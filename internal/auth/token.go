package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager signs and validates the JWT wrapped in the browser session
// cookie. The token carries only the client id; upstream bearer tokens never
// leave the session store.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 720 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// ClientClaims describes the session cookie payload.
type ClientClaims struct {
	ClientID string `json:"cid"`
	jwt.RegisteredClaims
}

// GenerateClientToken builds and signs a cookie token for the client id.
func (tm *TokenManager) GenerateClientToken(clientID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(tm.ttl)
	claims := &ClientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseClientToken validates the cookie token and returns the client id.
func (tm *TokenManager) ParseClientToken(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &ClientClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*ClientClaims)
	if !ok || !parsed.Valid || claims.ClientID == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.ClientID, nil
}
