package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func TestGenerateTokenPair_AccessVerifies(t *testing.T) {
	access, refresh, err := GenerateTokenPair("alice@example.com", testSecret, time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}
	if access == refresh {
		t.Error("Access and refresh tokens should differ")
	}

	subject, err := VerifyAccessToken(access, testSecret)
	if err != nil {
		t.Fatalf("VerifyAccessToken failed: %v", err)
	}
	if subject != "alice@example.com" {
		t.Errorf("Subject = %q, want alice@example.com", subject)
	}
}

func TestVerifyAccessToken_RefreshRejected(t *testing.T) {
	_, refresh, err := GenerateTokenPair("alice@example.com", testSecret, time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	_, err = VerifyAccessToken(refresh, testSecret)
	if !errors.Is(err, ErrWrongType) {
		t.Fatalf("Expected ErrWrongType for refresh token, got %v", err)
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	access, _, err := GenerateTokenPair("alice@example.com", testSecret, -time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	_, err = VerifyAccessToken(access, testSecret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	access, _, err := GenerateTokenPair("alice@example.com", testSecret, time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	_, err = VerifyAccessToken(access, "other-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken with wrong secret, got %v", err)
	}
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", strings.Repeat("a.", 3)} {
		if _, err := VerifyAccessToken(tok, testSecret); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestVerifyAccessToken_EmptySecretStillSigned(t *testing.T) {
	// Tokens are bound to the secret they were minted with, even an empty one.
	access, _, err := GenerateTokenPair("alice@example.com", "", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}
	if _, err := VerifyAccessToken(access, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken across secrets, got %v", err)
	}
}
