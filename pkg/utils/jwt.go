package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// CreateJWTToken issues the token a caller presents when initiating a
// cash payment.
func CreateJWTToken(subject string, ttl time.Duration, jwtSecretKey string, jwtKid string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["sub"] = subject
	claims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = jwtKid

	return token.SignedString([]byte(jwtSecretKey))
}
