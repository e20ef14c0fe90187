package theme_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/HerbHall/shadetree/internal/config"
	"github.com/HerbHall/shadetree/internal/designsys"
	"github.com/HerbHall/shadetree/internal/event"
	"github.com/HerbHall/shadetree/internal/store"
	"github.com/HerbHall/shadetree/internal/theme"
	"github.com/HerbHall/shadetree/pkg/palette"
)

func setupHandlerEnv(t *testing.T) (*http.ServeMux, *theme.Store) {
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
	ts := theme.NewStore(db.DB())
	if err := ts.SeedBuiltins(ctx, palette.Builtins()); err != nil {
		t.Fatalf("SeedBuiltins: %v", err)
	}

	cfg := config.Theme{
		DefaultTheme:   "material",
		DefaultPreset:  "default",
		DefaultMode:    "system",
		EnableDarkMode: true,
		SessionTTL:     24 * time.Hour,
	}
	logger := zap.NewNop()
	bus := event.NewBus(logger)
	manager := theme.NewManager(cfg, palette.NewBuiltinRegistry(), designsys.NewCatalog(), ts, bus, logger)
	handler := theme.NewHandler(manager, ts, bus, logger)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux, ts
}

func doRequest(mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) theme.State {
	t.Helper()
	var st theme.State
	if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return st
}

func TestHandleThemeCSS_Defaults(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "GET", "/theme.css", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /theme.css status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Type"); got != "text/css; charset=utf-8" {
		t.Errorf("Content-Type = %q, want %q", got, "text/css; charset=utf-8")
	}
	if got := w.Header().Get("Cache-Control"); got != "private, max-age=3600" {
		t.Errorf("Cache-Control = %q, want %q", got, "private, max-age=3600")
	}
	if got := w.Header().Get("Vary"); got != "Cookie" {
		t.Errorf("Vary = %q, want %q", got, "Cookie")
	}
	if got := w.Header().Get("Accept-CH"); got != "Sec-CH-Prefers-Color-Scheme" {
		t.Errorf("Accept-CH = %q, want %q", got, "Sec-CH-Prefers-Color-Scheme")
	}
	if got := w.Header().Get("ETag"); got != `"material-default-system-"` {
		t.Errorf("ETag = %q, want %q", got, `"material-default-system-"`)
	}
	body := w.Body.String()
	if !strings.Contains(body, ":root {") {
		t.Error("stylesheet missing :root block")
	}
	if !strings.Contains(body, `[data-theme="dark"]`) {
		t.Error("stylesheet missing dark block")
	}
}

func TestHandleThemeCSS_PresetOverride(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "GET", "/theme.css?preset=blue", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "--primary: 221 83% 53%;") {
		t.Error("light block missing the blue primary")
	}
	if !strings.Contains(body, "--primary: 224 76% 48%;") {
		t.Error("dark block missing the blue dark primary")
	}
}

func TestHandleThemeCSS_ETagRevalidation(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	first := doRequest(mux, "GET", "/theme.css", nil)
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("first response has no ETag")
	}

	req := httptest.NewRequest("GET", "/theme.css", nil)
	req.Header.Set("If-None-Match", etag)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotModified {
		t.Fatalf("revalidation status = %d, want %d", w.Code, http.StatusNotModified)
	}
	if w.Body.Len() != 0 {
		t.Errorf("304 body length = %d, want 0", w.Body.Len())
	}

	// A different selection must miss the validator.
	req = httptest.NewRequest("GET", "/theme.css?preset=blue", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("changed selection status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestHandleGetSelection(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "GET", "/api/v1/theme/selection", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	st := decodeState(t, w)
	if st.Theme != "material" || st.Preset != "default" {
		t.Errorf("State = %+v, want material/default", st)
	}
	if st.ResolvedMode != palette.ModeLight {
		t.Errorf("ResolvedMode = %q, want %q", st.ResolvedMode, palette.ModeLight)
	}
}

func TestHandleSetSelection(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "PUT", "/api/v1/theme/selection", map[string]string{"preset": "rose"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if st := decodeState(t, w); st.Preset != "rose" {
		t.Errorf("Preset = %q, want %q", st.Preset, "rose")
	}

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == theme.CookiePreset && c.Value == "rose" {
			found = true
		}
	}
	if !found {
		t.Error("preset cookie was not set")
	}
}

func TestHandleSetSelection_UnknownPreset(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "PUT", "/api/v1/theme/selection", map[string]string{"preset": "neon"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
	var problem struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(w.Body).Decode(&problem); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if !strings.Contains(problem.Detail, "unknown color preset") {
		t.Errorf("Detail = %q, want it to name the unknown preset", problem.Detail)
	}
}

func TestHandleSetSelection_MalformedBody(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	req := httptest.NewRequest("PUT", "/api/v1/theme/selection", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleSetSelection_EmptyUpdate(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "PUT", "/api/v1/theme/selection", map[string]string{})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if cookies := w.Result().Cookies(); len(cookies) != 0 {
		t.Errorf("empty update set %d cookies, want 0", len(cookies))
	}
}

func TestHandleToggle(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "POST", "/api/v1/theme/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	st := decodeState(t, w)
	if st.Mode != palette.ModeDark {
		t.Errorf("Mode = %q, want %q", st.Mode, palette.ModeDark)
	}
	if st.ResolvedMode != palette.ModeDark {
		t.Errorf("ResolvedMode = %q, want %q", st.ResolvedMode, palette.ModeDark)
	}
}

func TestHandleListPresets(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "GET", "/api/v1/theme/presets", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var infos []theme.PresetInfo
	if err := json.NewDecoder(w.Body).Decode(&infos); err != nil {
		t.Fatalf("decode presets: %v", err)
	}
	if len(infos) != len(palette.Builtins()) {
		t.Fatalf("len(presets) = %d, want %d", len(infos), len(palette.Builtins()))
	}
	active := 0
	for _, info := range infos {
		if info.Active {
			active++
			if info.Name != "default" {
				t.Errorf("active preset = %q, want %q", info.Name, "default")
			}
		}
	}
	if active != 1 {
		t.Errorf("active presets = %d, want 1", active)
	}
}

func TestHandleListSystems(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "GET", "/api/v1/theme/systems", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var systems []theme.SystemInfo
	if err := json.NewDecoder(w.Body).Decode(&systems); err != nil {
		t.Fatalf("decode systems: %v", err)
	}
	if len(systems) == 0 {
		t.Fatal("no systems returned")
	}
	for _, s := range systems {
		if s.Active != (s.Name == "material") {
			t.Errorf("system %q Active = %v", s.Name, s.Active)
		}
	}
}

func TestHandleListPacks(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "GET", "/api/v1/theme/packs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var packs []theme.PackInfo
	if err := json.NewDecoder(w.Body).Decode(&packs); err != nil {
		t.Fatalf("decode packs: %v", err)
	}
	if len(packs) == 0 {
		t.Fatal("no packs returned")
	}
	for _, pk := range packs {
		if pk.System == "" || pk.Preset == "" {
			t.Errorf("pack %q missing system or preset", pk.Name)
		}
		if pk.Active {
			t.Errorf("pack %q active without a selection", pk.Name)
		}
	}
}

func TestHandleSwitcher(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "GET", "/api/v1/theme/switcher", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want %q", ct, "text/html; charset=utf-8")
	}
	body := w.Body.String()
	if !strings.Contains(body, `class="shadetree-switcher"`) {
		t.Error("fragment missing the switcher container")
	}
	if !strings.Contains(body, `data-shadetree-action="toggle"`) {
		t.Error("fragment missing the mode toggle")
	}
	if !strings.Contains(body, `data-shadetree-action="set-preset"`) {
		t.Error("fragment missing the preset select")
	}
}

// --- Custom theme CRUD ---

func customTheme(name string) map[string]any {
	tokens := palette.Builtins()[0]
	return map[string]any{
		"name":  name,
		"light": tokens.Light,
		"dark":  tokens.Dark,
	}
}

func TestHandleListThemes_Seeded(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "GET", "/api/v1/themes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var recs []theme.Record
	if err := json.NewDecoder(w.Body).Decode(&recs); err != nil {
		t.Fatalf("decode themes: %v", err)
	}
	if len(recs) != len(palette.Builtins()) {
		t.Fatalf("len(themes) = %d, want %d", len(recs), len(palette.Builtins()))
	}
	for _, rec := range recs {
		if !rec.BuiltIn {
			t.Errorf("seeded theme %q not marked built-in", rec.Name)
		}
	}
}

func TestHandleCreateTheme(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "POST", "/api/v1/themes", customTheme("midnight"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	var rec theme.Record
	if err := json.NewDecoder(w.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.ID == "" {
		t.Error("created theme has no ID")
	}
	if rec.Label != "midnight" {
		t.Errorf("Label = %q, want it defaulted to the name", rec.Label)
	}
	if rec.BuiltIn {
		t.Error("created theme marked built-in")
	}

	// The new theme is live in the registry and selectable immediately.
	css := doRequest(mux, "GET", "/theme.css?preset=midnight", nil)
	if css.Code != http.StatusOK {
		t.Fatalf("GET /theme.css?preset=midnight status = %d", css.Code)
	}
	if got := css.Header().Get("ETag"); !strings.Contains(got, "midnight") {
		t.Errorf("ETag = %q, want the new preset in effect", got)
	}

	got := doRequest(mux, "GET", "/api/v1/themes/"+rec.ID, nil)
	if got.Code != http.StatusOK {
		t.Errorf("GET created theme status = %d, want %d", got.Code, http.StatusOK)
	}
}

func TestHandleCreateTheme_Validation(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	tokens := palette.Builtins()[0]
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"light": tokens.Light, "dark": tokens.Dark}},
		{"bad slug", map[string]any{"name": "Bad_Name", "light": tokens.Light, "dark": tokens.Dark}},
		{"missing tokens", map[string]any{"name": "midnight", "light": tokens.Light}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(mux, "POST", "/api/v1/themes", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleCreateTheme_NameConflicts(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	// Collides with a built-in preset.
	w := doRequest(mux, "POST", "/api/v1/themes", customTheme("blue"))
	if w.Code != http.StatusConflict {
		t.Errorf("built-in collision status = %d, want %d", w.Code, http.StatusConflict)
	}

	// Collides with an earlier custom theme.
	if w := doRequest(mux, "POST", "/api/v1/themes", customTheme("midnight")); w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", w.Code, http.StatusCreated)
	}
	w = doRequest(mux, "POST", "/api/v1/themes", customTheme("midnight"))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestHandleUpdateTheme(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	created := doRequest(mux, "POST", "/api/v1/themes", customTheme("midnight"))
	if created.Code != http.StatusCreated {
		t.Fatalf("create status = %d", created.Code)
	}
	var rec theme.Record
	if err := json.NewDecoder(created.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}

	w := doRequest(mux, "PUT", "/api/v1/themes/"+rec.ID, map[string]string{"label": "After Dark"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	var updated theme.Record
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("decode updated record: %v", err)
	}
	if updated.Label != "After Dark" {
		t.Errorf("Label = %q, want %q", updated.Label, "After Dark")
	}
	if updated.Name != "midnight" {
		t.Errorf("Name = %q, want unchanged", updated.Name)
	}
}

func TestHandleUpdateTheme_Rename(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	created := doRequest(mux, "POST", "/api/v1/themes", customTheme("midnight"))
	var rec theme.Record
	if err := json.NewDecoder(created.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}

	w := doRequest(mux, "PUT", "/api/v1/themes/"+rec.ID, map[string]string{"name": "after-dark"})
	if w.Code != http.StatusOK {
		t.Fatalf("rename status = %d: %s", w.Code, w.Body.String())
	}

	// The registry entry moved with the rename.
	var infos []theme.PresetInfo
	list := doRequest(mux, "GET", "/api/v1/theme/presets", nil)
	if err := json.NewDecoder(list.Body).Decode(&infos); err != nil {
		t.Fatalf("decode presets: %v", err)
	}
	names := make(map[string]bool, len(infos))
	for _, info := range infos {
		names[info.Name] = true
	}
	if !names["after-dark"] {
		t.Error("renamed preset missing from the registry")
	}
	if names["midnight"] {
		t.Error("old preset name still in the registry")
	}
}

func TestHandleUpdateTheme_BuiltIn(t *testing.T) {
	mux, ts := setupHandlerEnv(t)

	rec, err := ts.GetThemeByName(context.Background(), "default")
	if err != nil || rec == nil {
		t.Fatalf("GetThemeByName(default) = %v, %v", rec, err)
	}

	w := doRequest(mux, "PUT", "/api/v1/themes/"+rec.ID, map[string]string{"label": "Hacked"})
	if w.Code != http.StatusForbidden {
		t.Errorf("update built-in status = %d, want %d", w.Code, http.StatusForbidden)
	}

	w = doRequest(mux, "DELETE", "/api/v1/themes/"+rec.ID, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("delete built-in status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestHandleDeleteTheme(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	created := doRequest(mux, "POST", "/api/v1/themes", customTheme("midnight"))
	var rec theme.Record
	if err := json.NewDecoder(created.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}

	w := doRequest(mux, "DELETE", "/api/v1/themes/"+rec.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", w.Code, http.StatusNoContent)
	}

	if w := doRequest(mux, "GET", "/api/v1/themes/"+rec.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", w.Code, http.StatusNotFound)
	}

	// The name can be reused once the theme is gone.
	if w := doRequest(mux, "POST", "/api/v1/themes", customTheme("midnight")); w.Code != http.StatusCreated {
		t.Errorf("recreate status = %d, want %d", w.Code, http.StatusCreated)
	}
}

func TestHandleDeleteTheme_Missing(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	w := doRequest(mux, "DELETE", "/api/v1/themes/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandleImportTheme(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	doc := `{
		"name": "zinc-custom",
		"cssVars": {
			"light": {"primary": "240 6% 10%", "radius": "0.5rem"},
			"dark": {"primary": "240 5% 65%"}
		}
	}`
	req := httptest.NewRequest("POST", "/api/v1/themes/import", strings.NewReader(doc))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("import status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	var rec theme.Record
	if err := json.NewDecoder(w.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Name != "zinc-custom" {
		t.Errorf("Name = %q, want %q", rec.Name, "zinc-custom")
	}
	if rec.Light.Primary != (palette.Color{H: 240, S: 6, L: 10}) {
		t.Errorf("Light.Primary = %+v, want the imported value", rec.Light.Primary)
	}

	css := doRequest(mux, "GET", "/theme.css?preset=zinc-custom", nil)
	if !strings.Contains(css.Body.String(), "--primary: 240 6% 10%;") {
		t.Error("imported preset not served by /theme.css")
	}
}

func TestHandleImportTheme_NameOverride(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	doc := `{"name": "blue", "cssVars": {"light": {}, "dark": {}}}`
	req := httptest.NewRequest("POST", "/api/v1/themes/import?name=ocean", strings.NewReader(doc))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	var rec theme.Record
	if err := json.NewDecoder(w.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Name != "ocean" {
		t.Errorf("Name = %q, want the override %q", rec.Name, "ocean")
	}
}

func TestHandleImportTheme_Malformed(t *testing.T) {
	mux, _ := setupHandlerEnv(t)

	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "{nope"},
		{"missing cssVars", `{"name": "x"}`},
		{"missing dark table", `{"name": "x", "cssVars": {"light": {}}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/themes/import", strings.NewReader(tc.doc))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestThemeCRUD_WithoutStore(t *testing.T) {
	logger := zap.NewNop()
	cfg := config.Theme{DefaultTheme: "material", DefaultPreset: "default", DefaultMode: "light"}
	manager := theme.NewManager(cfg, palette.NewBuiltinRegistry(), designsys.NewCatalog(), nil, nil, logger)
	handler := theme.NewHandler(manager, nil, nil, logger)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	w := doRequest(mux, "GET", "/api/v1/themes", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("list status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	// Selection endpoints stay up without storage.
	if w := doRequest(mux, "GET", "/api/v1/theme/selection", nil); w.Code != http.StatusOK {
		t.Errorf("selection status = %d, want %d", w.Code, http.StatusOK)
	}
	if w := doRequest(mux, "GET", "/theme.css", nil); w.Code != http.StatusOK {
		t.Errorf("theme.css status = %d, want %d", w.Code, http.StatusOK)
	}
}
