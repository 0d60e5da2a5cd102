// Package auth verifies operator credentials and issues the signed
// session tokens that gate the admin endpoints.
package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenTTL is how long an admin session token stays valid.
const AdminTokenTTL = 12 * time.Hour

const roleAdmin = "admin"

// Claims are the session token claims. Role gates the admin routes.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func secret() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}
	return []byte(s), nil
}

// GenerateAdminToken signs an HS256 session token for the given
// operator username.
func GenerateAdminToken(username string) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Role: roleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    "hair-salon",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AdminTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseAdminToken verifies signature, expiry and the admin role, and
// returns the claims.
func ParseAdminToken(tokenString string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Role != roleAdmin {
		return nil, errors.New("token lacks admin role")
	}
	return claims, nil
}
