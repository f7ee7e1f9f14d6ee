package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the "iss" claim of tokens minted by GenerateToken.
const Issuer = "farm-auth"

// GenerateToken signs an HS256 token for userID that expires after ttl.
func GenerateToken(userID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		"iss": Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
