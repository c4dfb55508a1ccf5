package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"breate/backend/internal/auth"
	"breate/backend/internal/config"
	"breate/backend/internal/db/repositories"
	"breate/backend/internal/models/dtos"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:       "test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestUserService_SignupLoginRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(gdb), testConfig(), nil)

	username := "alice"
	summary, err := svc.Signup(context.Background(), &dtos.SignupReq{
		Email:    "alice@example.com",
		Password: "hunter22",
		Username: &username,
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if summary.ID == 0 {
		t.Error("Expected a persisted user ID")
	}
	if summary.Username == nil || *summary.Username != "alice" {
		t.Errorf("Unexpected username in summary: %v", summary.Username)
	}

	tokens, err := svc.Login(context.Background(), &dtos.LoginReq{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tokens.TokenType != "bearer" {
		t.Errorf("Unexpected token type %q", tokens.TokenType)
	}

	subject, err := auth.VerifyAccessToken(tokens.AccessToken, "test-secret")
	if err != nil {
		t.Fatalf("Access token did not verify: %v", err)
	}
	if subject != "alice@example.com" {
		t.Errorf("Token subject = %q, want the user email", subject)
	}
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(gdb), testConfig(), nil)

	req := &dtos.SignupReq{Email: "alice@example.com", Password: "hunter22"}
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("First signup failed: %v", err)
	}
	_, err := svc.Signup(context.Background(), req)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected ErrConflict for duplicate email, got %v", err)
	}
}

func TestUserService_Signup_DuplicateUsername(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(gdb), testConfig(), nil)

	username := "alice"
	if _, err := svc.Signup(context.Background(), &dtos.SignupReq{
		Email: "alice@example.com", Password: "hunter22", Username: &username,
	}); err != nil {
		t.Fatalf("First signup failed: %v", err)
	}
	_, err := svc.Signup(context.Background(), &dtos.SignupReq{
		Email: "alice2@example.com", Password: "hunter22", Username: &username,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected ErrConflict for duplicate username, got %v", err)
	}
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(gdb), testConfig(), nil)

	_, err := svc.Signup(context.Background(), &dtos.SignupReq{Email: "alice@example.com"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(gdb), testConfig(), nil)

	if _, err := svc.Signup(context.Background(), &dtos.SignupReq{
		Email: "alice@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	_, err := svc.Login(context.Background(), &dtos.LoginReq{
		Email: "alice@example.com", Password: "wrong",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized for wrong password, got %v", err)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(gdb), testConfig(), nil)

	_, err := svc.Login(context.Background(), &dtos.LoginReq{
		Email: "ghost@example.com", Password: "whatever",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized for unknown email, got %v", err)
	}
}
