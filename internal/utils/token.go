package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by first-party access tokens. Subject is the record id of
// the applicant, employer or admin; Role routes authorization.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

const tokenTTL = 24 * time.Hour

// IssueToken mints an HS256 access token for the given account.
func IssueToken(subject, role string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", E(CodeInternal, "IssueToken", "JWT_SECRET is not set", nil)
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
