package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestMux(t *testing.T, svc *Service) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestHandleToken_Success(t *testing.T) {
	mux := newTestMux(t, newTestService(t))

	req := httptest.NewRequest("POST", "/api/v1/auth/token", strings.NewReader(`{"password":"opensesame"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected non-empty access_token")
	}
	if !strings.Contains(resp.AccessToken, ".") {
		t.Error("access_token does not look like a JWT")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token_type = %q, want %q", resp.TokenType, "Bearer")
	}
}

func TestHandleToken_WrongPassword(t *testing.T) {
	mux := newTestMux(t, newTestService(t))

	req := httptest.NewRequest("POST", "/api/v1/auth/token", strings.NewReader(`{"password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content-type = %q, want %q", ct, "application/problem+json")
	}
	// The submitted password must never be echoed back.
	if strings.Contains(w.Body.String(), "nope") {
		t.Errorf("response echoes submitted password: %s", w.Body.String())
	}
}

func TestHandleToken_BadRequests(t *testing.T) {
	mux := newTestMux(t, newTestService(t))

	tests := []struct {
		name string
		body string
	}{
		{"truncated JSON", `{"password":`},
		{"empty body", ``},
		{"missing password", `{}`},
		{"empty password", `{"password":""}`},
		{"array body", `["opensesame"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/auth/token", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusBadRequest, w.Body.String())
			}
		})
	}
}

func TestHandleToken_NotConfigured(t *testing.T) {
	svc := NewService("", newTestTokenService(), zap.NewNop())
	mux := newTestMux(t, svc)

	req := httptest.NewRequest("POST", "/api/v1/auth/token", strings.NewReader(`{"password":"anything"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
