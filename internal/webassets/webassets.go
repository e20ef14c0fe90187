// Package webassets serves the embedded client-side assets: the theme
// switcher script and the anti-FOUC boot snippet.
package webassets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// BootScript applies the stored mode before first paint so the page
// never flashes the wrong scheme. Serve it from /theme/boot.js or embed
// it inline in a <script> tag ahead of the stylesheet.
const BootScript = `(function() {
  var mode = null;
  try { mode = localStorage.getItem('shadetree-mode'); } catch (e) {}
  mode = mode || 'system';
  var resolved = mode;
  if (mode === 'system') {
    resolved = window.matchMedia('(prefers-color-scheme: dark)').matches ? 'dark' : 'light';
  }
  document.documentElement.setAttribute('data-theme', resolved);
  document.documentElement.setAttribute('data-theme-mode', mode);
})();
`

// ThemeJS returns the client script. The static bundle builder writes
// the same bytes alongside the generated stylesheets.
func ThemeJS() []byte {
	data, err := staticFS.ReadFile("static/theme.js")
	if err != nil {
		panic("webassets: theme.js not embedded: " + err.Error())
	}
	return data
}

// Handler serves the embedded static files. Mount under /static/ with
// http.StripPrefix.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("webassets: failed to create sub filesystem: " + err.Error())
	}
	return http.FileServer(http.FS(sub))
}

// RegisterRoutes registers the asset routes on the mux.
func RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /static/", http.StripPrefix("/static/", Handler()))
	mux.HandleFunc("GET /theme/boot.js", handleBootScript)
}

func handleBootScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(BootScript))
}
