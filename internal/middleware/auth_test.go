package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"breate/backend/internal/auth"
	"breate/backend/internal/db"
	"breate/backend/internal/db/repositories"
	models "breate/backend/internal/models/gorm"
)

const testSecret = "middleware-test-secret"

func setupAuthTest(t *testing.T) (*repositories.UserRepository, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return repositories.NewUserRepository(gdb), gdb
}

func authedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthMiddleware_ValidTokenResolvesUser(t *testing.T) {
	repo, gdb := setupAuthTest(t)

	username := "alice"
	user := &models.User{Email: "alice@example.com", PasswordHash: "x", Username: &username}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	access, _, err := auth.GenerateTokenPair(user.Email, testSecret, time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint token: %v", err)
	}

	var seen *models.User
	handler := AuthMiddleware(repo, testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.CurrentUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(access))

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	if seen == nil || seen.Email != "alice@example.com" {
		t.Fatalf("Caller identity not resolved: %+v", seen)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	repo, _ := setupAuthTest(t)

	// Token with a subject no user record backs.
	orphan, _, err := auth.GenerateTokenPair("ghost@example.com", testSecret, time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint token: %v", err)
	}
	wrongSecret, _, err := auth.GenerateTokenPair("alice@example.com", "other-secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint token: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage token", "not-a-jwt"},
		{"wrong secret", wrongSecret},
		{"unknown subject", orphan},
	}

	handler := AuthMiddleware(repo, testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run for rejected requests")
	}))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authedRequest(tc.token))

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("Status = %d, want 401", rec.Code)
			}
			if rec.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Errorf("Missing WWW-Authenticate challenge")
			}
		})
	}
}
