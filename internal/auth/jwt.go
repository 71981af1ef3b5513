// Package auth issues and validates the bearer tokens the transport
// layer requires on POST /v1/plans, mirroring the teacher's
// internal/utils/jwt.go token helpers.
package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("change-me-dev-secret")
}

// GenerateJWT issues a JWT for a caller ID with the given ttl.
func GenerateJWT(callerID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": callerID,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseJWT validates the token and returns the caller ID it was issued for.
func ParseJWT(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if sub, ok := claims["sub"].(string); ok {
			return sub, nil
		}
	}
	return "", jwt.ErrSignatureInvalid
}
