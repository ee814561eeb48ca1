package jwt

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

// Generate mints a signed HS256 session token for the given user.
func Generate(ctx context.Context, userID string, secret string) (string, error) {
	now := time.Now()
	claims := jwtlib.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseTokenFromHeader extracts the bearer token from the Authorization header.
func ParseTokenFromHeader(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", fmt.Errorf("invalid authorization header")
	}

	return token, nil
}

// ParseUserID validates the token signature and returns the subject claim.
func ParseUserID(ctx context.Context, token string, secret string) (string, error) {
	parsed, err := jwtlib.Parse(token, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("invalid token")
	}

	userID, err := parsed.Claims.GetSubject()
	if err != nil || userID == "" {
		return "", fmt.Errorf("token has no subject claim")
	}

	return userID, nil
}
