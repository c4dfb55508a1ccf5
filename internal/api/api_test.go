package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"breate/backend/internal/api"
	"breate/backend/internal/config"
	"breate/backend/internal/db"
	"breate/backend/internal/routes"
)

// envelope mirrors dtos.APIResponse with the payload kept raw so each
// assertion can decode its own shape.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	cfg := &config.Config{
		SecretKey:       "api-test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	deps, err := api.InitDependencies(cfg, gdb, nil)
	if err != nil {
		t.Fatalf("Failed to init dependencies: %v", err)
	}

	r := chi.NewRouter()
	routes.RegisterAPIRoutes(r, deps, api.NewHandlers(deps))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, payload any) (*http.Response, envelope) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode envelope for %s %s: %v", method, url, err)
	}
	return resp, env
}

func signupAndLogin(t *testing.T, base, email, username string) string {
	t.Helper()

	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/users/signup", "", map[string]any{
		"email":    email,
		"password": "hunter22",
		"username": username,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Signup %s: status %d (%s)", email, resp.StatusCode, env.Message)
	}

	resp, env = doJSON(t, http.MethodPost, base+"/api/v1/users/login", "", map[string]any{
		"email":    email,
		"password": "hunter22",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Login %s: status %d (%s)", email, resp.StatusCode, env.Message)
	}

	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &tokens); err != nil {
		t.Fatalf("Failed to decode tokens: %v", err)
	}
	return tokens.AccessToken
}

// TestProjectLifecycleOverHTTP walks the full posting flow: a project is
// posted, appears in discovery while open, advances through its lifecycle
// under ownership checks, and becomes immutable once completed.
func TestProjectLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL

	poster := signupAndLogin(t, base, "poster@example.com", "poster")
	other := signupAndLogin(t, base, "other@example.com", "other")

	// Re-registering an email is a conflict, not a validation failure.
	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/users/signup", "", map[string]any{
		"email":    "poster@example.com",
		"password": "hunter22",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Duplicate signup: status %d, want 409 (%s)", resp.StatusCode, env.Message)
	}

	resp, env = doJSON(t, http.MethodPost, base+"/api/v1/projects", poster, map[string]any{
		"title":             "Modular synth zine",
		"objective":         "Print a small-run zine about DIY synthesizers",
		"project_type":      "publication",
		"needed_archetypes": []string{"Creator", "Innovator"},
		"coalition_tags":    []string{"print"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create project: status %d (%s)", resp.StatusCode, env.Message)
	}
	var created struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("Failed to decode project: %v", err)
	}
	if created.Status != "open" {
		t.Errorf("New project status = %q, want open", created.Status)
	}

	projectURL := fmt.Sprintf("%s/api/v1/projects/%d", base, created.ID)
	statusURL := projectURL + "/status"

	// Open projects show up in discovery.
	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/discover/projects", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Discover: status %d", resp.StatusCode)
	}
	var feed []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &feed); err != nil {
		t.Fatalf("Failed to decode feed: %v", err)
	}
	if len(feed) != 1 || feed[0].ID != created.ID {
		t.Errorf("Discovery feed = %v, want the open project", feed)
	}

	// Only the poster may advance the status.
	resp, _ = doJSON(t, http.MethodPatch, statusURL, other, map[string]string{"status": "in_progress"})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Non-owner status update: status %d, want 403", resp.StatusCode)
	}

	// Skipping a step is rejected and leaves the record untouched.
	resp, _ = doJSON(t, http.MethodPatch, statusURL, poster, map[string]string{"status": "completed"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Skipped transition: status %d, want 400", resp.StatusCode)
	}

	resp, env = doJSON(t, http.MethodPatch, statusURL, poster, map[string]string{"status": "in_progress"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("open->in_progress: status %d (%s)", resp.StatusCode, env.Message)
	}

	// In-progress projects already cannot be deleted.
	resp, _ = doJSON(t, http.MethodDelete, projectURL, poster, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Delete of in-progress project: status %d, want 400", resp.StatusCode)
	}

	resp, env = doJSON(t, http.MethodPatch, statusURL, poster, map[string]string{"status": "completed"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("in_progress->completed: status %d (%s)", resp.StatusCode, env.Message)
	}
	var completed struct {
		Status      string     `json:"status"`
		CompletedAt *time.Time `json:"completed_at"`
	}
	if err := json.Unmarshal(env.Data, &completed); err != nil {
		t.Fatalf("Failed to decode project: %v", err)
	}
	if completed.CompletedAt == nil {
		t.Error("Completed project is missing its completion timestamp")
	}

	// Completed projects leave the discovery feed and refuse further updates.
	_, env = doJSON(t, http.MethodGet, base+"/api/v1/discover/projects", "", nil)
	feed = nil
	if err := json.Unmarshal(env.Data, &feed); err != nil {
		t.Fatalf("Failed to decode feed: %v", err)
	}
	if len(feed) != 0 {
		t.Errorf("Completed project still in discovery feed: %v", feed)
	}
	resp, _ = doJSON(t, http.MethodPatch, statusURL, poster, map[string]string{"status": "in_progress"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Update of completed project: status %d, want 400", resp.StatusCode)
	}

	// The collaboration link between the two is pairwise unique in either order.
	resp, env = doJSON(t, http.MethodPost, base+"/api/v1/collabcircle", poster, map[string]string{
		"collaborator_username": "other",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create collab: status %d (%s)", resp.StatusCode, env.Message)
	}
	resp, env = doJSON(t, http.MethodPost, base+"/api/v1/collabcircle", other, map[string]string{
		"collaborator_username": "poster",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Reversed duplicate collab: status %d, want 400", resp.StatusCode)
	}
	if env.Message != "Collaboration already exists" {
		t.Errorf("Duplicate collab message = %q", env.Message)
	}

	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/collabcircle/me", other, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("List collabs: status %d", resp.StatusCode)
	}
	var links []struct {
		UserAUsername string `json:"user_a_username"`
		UserBUsername string `json:"user_b_username"`
	}
	if err := json.Unmarshal(env.Data, &links); err != nil {
		t.Fatalf("Failed to decode collabs: %v", err)
	}
	if len(links) != 1 || links[0].UserAUsername != "poster" || links[0].UserBUsername != "other" {
		t.Errorf("Collab list = %v", links)
	}

	// Mutations without a token are challenged.
	resp, _ = doJSON(t, http.MethodPost, base+"/api/v1/projects", "", map[string]string{"title": "x"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Unauthenticated create: status %d, want 401", resp.StatusCode)
	}
	if resp.Header.Get("WWW-Authenticate") != "Bearer" {
		t.Error("Missing WWW-Authenticate challenge")
	}
}
