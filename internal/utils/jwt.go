package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// JWT Claims
type Claims struct {
	jwt.RegisteredClaims // Standard JWT claims; Subject carries the email
}

// GenerateJWT creates a token bound to the given email, valid for ttl
func GenerateJWT(email, secret string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,                                   // Token subject is the account email
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Absolute expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err // Covers bad signature, malformed token and expiry
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
