package webassets_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HerbHall/shadetree/internal/webassets"
)

func TestThemeJS(t *testing.T) {
	data := webassets.ThemeJS()
	if len(data) == 0 {
		t.Fatal("ThemeJS() returned no bytes")
	}
	script := string(data)
	for _, want := range []string{
		"window.shadetree",
		"shadetree-mode",
		"shadetree:theme-changed",
		"requestAnimationFrame",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("theme.js missing %q", want)
		}
	}
}

func TestRegisterRoutes_StaticScript(t *testing.T) {
	mux := http.NewServeMux()
	webassets.RegisterRoutes(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/static/theme.js", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /static/theme.js status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "javascript") {
		t.Errorf("Content-Type = %q, want a javascript type", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("empty script body")
	}
}

func TestRegisterRoutes_BootScript(t *testing.T) {
	mux := http.NewServeMux()
	webassets.RegisterRoutes(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/theme/boot.js", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /theme/boot.js status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Body.String(); got != webassets.BootScript {
		t.Error("boot.js body does not match BootScript")
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q, want %q", cc, "public, max-age=86400")
	}
}

func TestBootScript_SetsAttributesBeforePaint(t *testing.T) {
	for _, want := range []string{
		"data-theme",
		"data-theme-mode",
		"prefers-color-scheme: dark",
		"localStorage.getItem('shadetree-mode')",
	} {
		if !strings.Contains(webassets.BootScript, want) {
			t.Errorf("BootScript missing %q", want)
		}
	}
}
