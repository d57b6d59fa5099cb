package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueJWT generates a signed, time-boxed session token for a user.
func IssueJWT(secret string, expiry time.Duration, userID, email string, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
