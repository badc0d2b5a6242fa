package core

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atmosai/internal/config"
	"atmosai/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Environment: "local",
		Service:     "atmosai-insights",
		Auth:        config.AuthConfig{APIKey: "test-key"},
		Security:    config.SecurityConfig{CorsAllowedOrigins: []string{"*"}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := NewServer(cfg, logger)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return srv
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decodeAuthError(t *testing.T, rec *httptest.ResponseRecorder) APIErrorResponse {
	t.Helper()
	var resp APIErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

// --- AuthMiddleware Tests ---

func TestAuthMiddleware_ValidKey(t *testing.T) {
	srv := newTestServer(t)
	srv.Authenticator = NewStaticKeyAuthenticator("test-key")

	handler := srv.AuthMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/analyze-weather", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	srv := newTestServer(t)
	srv.Authenticator = NewStaticKeyAuthenticator("test-key")

	handler := srv.AuthMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/analyze-weather", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	resp := decodeAuthError(t, rec)
	if resp.Error.Code != string(types.ErrCodeAuthTokenMissing) {
		t.Errorf("expected token-missing code, got %q", resp.Error.Code)
	}
}

func TestAuthMiddleware_WrongKey(t *testing.T) {
	srv := newTestServer(t)
	srv.Authenticator = NewStaticKeyAuthenticator("test-key")

	handler := srv.AuthMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/analyze-weather", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	resp := decodeAuthError(t, rec)
	if resp.Error.Code != string(types.ErrCodeAuthTokenInvalid) {
		t.Errorf("expected token-invalid code, got %q", resp.Error.Code)
	}
}

func TestAuthMiddleware_MalformedScheme(t *testing.T) {
	srv := newTestServer(t)
	srv.Authenticator = NewStaticKeyAuthenticator("test-key")

	handler := srv.AuthMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/analyze-weather", nil)
	req.Header.Set("Authorization", "Basic dGVzdDp0ZXN0")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	resp := decodeAuthError(t, rec)
	if resp.Error.Code != string(types.ErrCodeAuthTokenMissing) {
		t.Errorf("expected token-missing code, got %q", resp.Error.Code)
	}
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	srv := newTestServer(t)
	srv.Authenticator = NewStaticKeyAuthenticator("test-key")

	handler := srv.AuthMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/analyze-weather", nil)
	req.Header.Set("Authorization", "bearer test-key")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_PublicPathsBypass(t *testing.T) {
	srv := newTestServer(t)
	srv.Authenticator = NewStaticKeyAuthenticator("test-key")

	handler := srv.AuthMiddleware(okHandler())

	for _, path := range []string{"/health", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("path %s: expected status 200, got %d", path, rec.Code)
		}
	}
}

func TestAuthMiddleware_NilAuthenticatorPassesThrough(t *testing.T) {
	srv := newTestServer(t)

	handler := srv.AuthMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/analyze-weather", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

// --- StaticKeyAuthenticator Tests ---

func TestStaticKeyAuthenticator_Verify(t *testing.T) {
	auth := NewStaticKeyAuthenticator("test-key")

	if err := auth.Verify(context.Background(), "test-key"); err != nil {
		t.Errorf("expected valid key to verify, got %v", err)
	}

	err := auth.Verify(context.Background(), "other-key")
	if err == nil {
		t.Fatal("expected invalid key to fail verification")
	}
	appErr, ok := err.(*types.AppError)
	if !ok {
		t.Fatalf("expected *types.AppError, got %T", err)
	}
	if appErr.Code != types.ErrCodeAuthTokenInvalid {
		t.Errorf("expected token-invalid code, got %q", appErr.Code)
	}
}

// --- extractBearerToken Tests ---

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"standard", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"surrounding whitespace", "Bearer   abc123  ", "abc123"},
		{"empty token", "Bearer ", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"bare token", "abc123", ""},
		{"empty header", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBearerToken(tt.header); got != tt.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
