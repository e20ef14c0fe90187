package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/HerbHall/shadetree/internal/auth"
	"github.com/HerbHall/shadetree/internal/config"
	"github.com/HerbHall/shadetree/internal/designsys"
	"github.com/HerbHall/shadetree/internal/server"
	"github.com/HerbHall/shadetree/internal/store"
	"github.com/HerbHall/shadetree/internal/theme"
	"github.com/HerbHall/shadetree/pkg/palette"
)

// newAPIEnv wires the theme and auth handlers onto a bare mux the way
// the composition root does. Token auth is left unconfigured, so theme
// mutations are open.
func newAPIEnv(t *testing.T) *http.ServeMux {
	t.Helper()

	db, err := store.New(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := db.Migrate(ctx, "theme", theme.Migrations()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	themeStore := theme.NewStore(db.DB())
	if err := themeStore.SeedBuiltins(ctx, palette.Builtins()); err != nil {
		t.Fatalf("SeedBuiltins() error = %v", err)
	}

	logger := zap.NewNop()
	cfg := config.Theme{
		DefaultTheme:   "material",
		DefaultPreset:  "default",
		DefaultMode:    "system",
		EnableDarkMode: true,
	}
	manager := theme.NewManager(cfg, palette.NewBuiltinRegistry(), designsys.NewCatalog(), themeStore, nil, logger)
	handler := theme.NewHandler(manager, themeStore, nil, logger)

	tokens := auth.NewTokenService([]byte("test-secret-key-32bytes-long!!"), time.Hour)
	authHandler := auth.NewHandler(auth.NewService("", tokens, logger), logger)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	authHandler.RegisterRoutes(mux)
	return mux
}

// =============================================================================
// Malformed JSON Tests
// =============================================================================

func TestMalformedJSON(t *testing.T) {
	mux := newAPIEnv(t)

	tests := []struct {
		name     string
		endpoint string
		method   string
		body     string
		wantCode int
	}{
		{
			name:     "selection - truncated JSON",
			endpoint: "/api/v1/theme/selection",
			method:   "PUT",
			body:     `{"preset": "ocean`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "selection - unquoted keys",
			endpoint: "/api/v1/theme/selection",
			method:   "PUT",
			body:     `{preset: ocean}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "selection - array instead of object",
			endpoint: "/api/v1/theme/selection",
			method:   "PUT",
			body:     `["ocean"]`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "selection - string instead of object",
			endpoint: "/api/v1/theme/selection",
			method:   "PUT",
			body:     `"just a string"`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "selection - empty body",
			endpoint: "/api/v1/theme/selection",
			method:   "PUT",
			body:     ``,
			wantCode: http.StatusBadRequest,
		},
		{
			// JSON null decodes into an empty update, which reads back
			// the current state instead of erroring.
			name:     "selection - null body",
			endpoint: "/api/v1/theme/selection",
			method:   "PUT",
			body:     `null`,
			wantCode: http.StatusOK,
		},
		{
			name:     "create theme - truncated JSON",
			endpoint: "/api/v1/themes",
			method:   "POST",
			body:     `{"name": "midnight"`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "create theme - array instead of object",
			endpoint: "/api/v1/themes",
			method:   "POST",
			body:     `[]`,
			wantCode: http.StatusBadRequest,
		},
		{
			// null decodes into an empty request, which fails the
			// name-required check.
			name:     "create theme - null body",
			endpoint: "/api/v1/themes",
			method:   "POST",
			body:     `null`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "import theme - not JSON at all",
			endpoint: "/api/v1/themes/import",
			method:   "POST",
			body:     `not json at all`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "token - truncated JSON",
			endpoint: "/api/v1/auth/token",
			method:   "POST",
			body:     `{"password":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "token - empty body",
			endpoint: "/api/v1/auth/token",
			method:   "POST",
			body:     ``,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.endpoint, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

// =============================================================================
// Selection Validation Tests
// =============================================================================

func TestSelectionValidation(t *testing.T) {
	mux := newAPIEnv(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "unknown preset",
			body:     `{"preset": "no-such-preset"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown design system",
			body:     `{"theme": "no-such-system"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown pack",
			body:     `{"pack": "no-such-pack"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid mode",
			body:     `{"mode": "sepia"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty pack clears the selection",
			body:     `{"pack": ""}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "valid mode",
			body:     `{"mode": "dark"}`,
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/v1/theme/selection", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

// TestQueryOverridesCorrected verifies that unknown values smuggled in
// through query parameters are corrected to registered fallbacks rather
// than surfaced as errors. Reads must never fail on stale stored state.
func TestQueryOverridesCorrected(t *testing.T) {
	mux := newAPIEnv(t)

	req := httptest.NewRequest("GET", "/api/v1/theme/selection?preset=no-such&theme=bogus&mode=sepia", http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var st theme.State
	if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if st.Preset != "default" {
		t.Errorf("Preset = %q, want corrected to %q", st.Preset, "default")
	}
	if st.Theme != "material" {
		t.Errorf("Theme = %q, want corrected to %q", st.Theme, "material")
	}
}

// =============================================================================
// Hostile Input Tests
// =============================================================================

// Theme names end up in cookies, CSS selectors, and SQL parameters, so
// the slug rule has to reject anything that could escape those contexts.
func TestHostileThemeNames(t *testing.T) {
	mux := newAPIEnv(t)

	payloads := []string{
		`' OR '1'='1`,
		`'; DROP TABLE themes; --`,
		`Robert'); DROP TABLE students;--`,
		`<script>alert('xss')</script>`,
		`../../../etc/passwd`,
		`midnight; DELETE FROM themes`,
		`mid night`,
		`UPPERCASE`,
		`</style><script>`,
	}

	for _, payload := range payloads {
		t.Run("create_"+payload[:minInt(len(payload), 20)], func(t *testing.T) {
			body, _ := json.Marshal(map[string]string{"name": payload})

			req := httptest.NewRequest("POST", "/api/v1/themes", strings.NewReader(string(body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusBadRequest, w.Body.String())
			}
		})
	}
}

// Theme IDs flow into parameterized queries only, so hostile IDs must
// come back as a plain 404, never a 500.
func TestHostileThemeIDs(t *testing.T) {
	mux := newAPIEnv(t)

	payloads := []string{
		`' OR '1'='1`,
		`'; DROP TABLE themes; --`,
		`../../../etc/passwd`,
		`..\..\..\windows\system32`,
		`%2e%2e%2f%2e%2e%2f`,
		`file:///etc/passwd`,
	}

	for _, payload := range payloads {
		t.Run("get_"+payload[:minInt(len(payload), 15)], func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/themes/"+url.PathEscape(payload), http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusNotFound, w.Body.String())
			}
		})
	}
}

// TestSwitcherEscapesLabels verifies that a hostile label stored through
// the API is HTML-escaped when the switcher fragment renders it.
func TestSwitcherEscapesLabels(t *testing.T) {
	mux := newAPIEnv(t)

	source := palette.Builtins()[0]
	create := theme.CreateThemeRequest{
		Name:  "xss-probe",
		Label: `<script>alert('xss')</script>`,
		Light: &source.Light,
		Dark:  &source.Dark,
	}
	body, _ := json.Marshal(create)

	req := httptest.NewRequest("POST", "/api/v1/themes", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create theme: status = %d, body: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest("GET", "/api/v1/theme/switcher", http.NoBody)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("switcher: status = %d", w.Code)
	}

	fragment := w.Body.String()
	if strings.Contains(fragment, "<script>alert") {
		t.Errorf("switcher contains unescaped script tag:\n%s", fragment)
	}
	if !strings.Contains(fragment, "&lt;script&gt;") {
		t.Errorf("switcher does not contain the escaped label:\n%s", fragment)
	}
}

// =============================================================================
// Oversized Payload Tests
// =============================================================================

func TestOversizedPayloads(t *testing.T) {
	mux := newAPIEnv(t)

	tests := []struct {
		name     string
		endpoint string
		method   string
		field    string
		size     int
	}{
		{
			name:     "1MB theme name",
			endpoint: "/api/v1/themes",
			method:   "POST",
			field:    "name",
			size:     1 * 1024 * 1024,
		},
		{
			name:     "1MB password",
			endpoint: "/api/v1/auth/token",
			method:   "POST",
			field:    "password",
			size:     1 * 1024 * 1024,
		},
		{
			name:     "10MB selection update",
			endpoint: "/api/v1/theme/selection",
			method:   "PUT",
			field:    "preset",
			size:     10 * 1024 * 1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"` + tt.field + `": "` + strings.Repeat("a", tt.size) + `"}`

			req := httptest.NewRequest(tt.method, tt.endpoint, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			// Oversized values should be rejected as bad input or bad
			// credentials, never crash the handler.
			if w.Code == http.StatusInternalServerError {
				t.Errorf("oversized payload caused server error; status = %d", w.Code)
			}
		})
	}
}

// TestImportBodyCapped verifies the import endpoint truncates oversized
// documents at its read limit and rejects the fragment cleanly.
func TestImportBodyCapped(t *testing.T) {
	mux := newAPIEnv(t)

	body := `{"name": "` + strings.Repeat("a", 10*1024*1024) + `"}`
	req := httptest.NewRequest("POST", "/api/v1/themes/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

// TestDeeplyNestedJSON tests handling of deeply nested JSON structures.
func TestDeeplyNestedJSON(t *testing.T) {
	mux := newAPIEnv(t)

	var nested strings.Builder
	depth := 1000
	for i := 0; i < depth; i++ {
		nested.WriteString(`{"nested":`)
	}
	nested.WriteString(`"value"`)
	for i := 0; i < depth; i++ {
		nested.WriteString(`}`)
	}

	req := httptest.NewRequest("PUT", "/api/v1/theme/selection", strings.NewReader(nested.String()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code == http.StatusInternalServerError {
		t.Errorf("deeply nested JSON caused server error; status = %d", w.Code)
	}
}

// =============================================================================
// Type Coercion Tests
// =============================================================================

func TestTypeCoercion(t *testing.T) {
	mux := newAPIEnv(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "number where string expected",
			body:     `{"preset": 123}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "boolean where string expected",
			body:     `{"preset": true}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "array where string expected",
			body:     `{"preset": ["default"]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "object where string expected",
			body:     `{"mode": {"name": "dark"}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			// null leaves the field unset, so nothing changes.
			name:     "null field",
			body:     `{"preset": null}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown fields ignored",
			body:     `{"mode": "light", "attempt": 99999999999999999999}`,
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/v1/theme/selection", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

// =============================================================================
// Content-Type Enforcement Tests
// =============================================================================

// TestContentTypeLenient documents that the API parses JSON bodies
// regardless of the Content-Type header. Strict enforcement could be
// added as middleware if it is ever needed.
func TestContentTypeLenient(t *testing.T) {
	mux := newAPIEnv(t)

	tests := []struct {
		name        string
		contentType string
	}{
		{name: "missing Content-Type", contentType: ""},
		{name: "text/plain", contentType: "text/plain"},
		{name: "application/json with charset", contentType: "application/json; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/v1/theme/selection", strings.NewReader(`{"mode": "light"}`))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
			}
		})
	}
}

// =============================================================================
// Response Format Validation
// =============================================================================

func TestErrorResponseFormat(t *testing.T) {
	mux := newAPIEnv(t)

	req := httptest.NewRequest("PUT", "/api/v1/theme/selection", strings.NewReader(`{"preset": "no-such-preset"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var p server.Problem
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if p.Type != server.ProblemTypeBadRequest {
		t.Errorf("Type = %q, want %q", p.Type, server.ProblemTypeBadRequest)
	}
	if p.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", p.Status, http.StatusBadRequest)
	}
	if !strings.Contains(p.Detail, "unknown color preset") {
		t.Errorf("Detail = %q, want it to name the unknown preset", p.Detail)
	}
	if p.Instance != "/api/v1/theme/selection" {
		t.Errorf("Instance = %q, want the request path", p.Instance)
	}
}

// =============================================================================
// Helpers
// =============================================================================

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
