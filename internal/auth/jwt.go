package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrWrongType    = errors.New("token is not an access token")
)

// TokenClaims is the signed claim set carried by both token kinds.
type TokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateTokenPair issues HS256 access and refresh tokens with the user's
// email as subject.
func GenerateTokenPair(email, secret string, accessTTL, refreshTTL time.Duration) (access, refresh string, err error) {
	now := time.Now()

	access, err = sign(email, tokenTypeAccess, secret, now, accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = sign(email, tokenTypeRefresh, secret, now, refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func sign(subject, tokenType, secret string, now time.Time, ttl time.Duration) (string, error) {
	claims := TokenClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken validates signature, expiry and token type, returning the
// subject claim. All failures collapse into ErrInvalidToken or ErrWrongType
// so callers surface a uniform 401.
func VerifyAccessToken(tokenString, secret string) (string, error) {
	var claims TokenClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	// A missing type claim is tolerated for tokens minted by older deployments.
	if claims.Type != "" && claims.Type != tokenTypeAccess {
		return "", ErrWrongType
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
