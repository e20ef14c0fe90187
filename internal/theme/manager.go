package theme

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HerbHall/shadetree/internal/config"
	"github.com/HerbHall/shadetree/internal/css"
	"github.com/HerbHall/shadetree/internal/designsys"
	"github.com/HerbHall/shadetree/internal/event"
	"github.com/HerbHall/shadetree/pkg/palette"
)

// Manager resolves the effective theme selection for a request and
// persists changes to cookies and the session record.
type Manager struct {
	cfg      config.Theme
	registry *palette.Registry
	catalog  *designsys.Catalog
	sessions SessionStore
	bus      *event.Bus
	logger   *zap.Logger
}

// NewManager creates a Manager. sessions and bus may be nil: without a
// session store the Manager runs on cookies and configured defaults
// alone, and without a bus no change events are published.
func NewManager(cfg config.Theme, registry *palette.Registry, catalog *designsys.Catalog, sessions SessionStore, bus *event.Bus, logger *zap.Logger) *Manager {
	return &Manager{
		cfg:      cfg,
		registry: registry,
		catalog:  catalog,
		sessions: sessions,
		bus:      bus,
		logger:   logger,
	}
}

// DarkModeEnabled reports whether visitors may select dark mode.
func (m *Manager) DarkModeEnabled() bool {
	return m.cfg.EnableDarkMode
}

// Registry returns the live preset registry.
func (m *Manager) Registry() *palette.Registry {
	return m.registry
}

// Catalog returns the design system catalog.
func (m *Manager) Catalog() *designsys.Catalog {
	return m.catalog
}

// State resolves the effective selection for a request: explicit query
// parameter > cookie > session record > configured default, with a
// selected pack pinning system and preset. Unknown stored values are
// corrected to registered fallbacks, never surfaced as errors.
func (m *Manager) State(r *http.Request) State {
	return m.resolve(m.overlay(m.loadPrefs(r), r), r)
}

// Apply validates a partial update, writes it through to cookies and
// the session record, publishes a change event, and returns the new
// effective state. Nothing is written when validation fails.
func (m *Manager) Apply(w http.ResponseWriter, r *http.Request, u Update) (State, error) {
	if err := m.validate(u); err != nil {
		return State{}, err
	}

	stored := m.loadPrefs(r)
	view := m.overlay(stored, r)

	packChanged := false
	if u.Theme != nil {
		stored.Theme, view.Theme = *u.Theme, *u.Theme
		m.setCookie(w, CookieTheme, *u.Theme)
	}
	if u.Preset != nil {
		stored.Preset, view.Preset = *u.Preset, *u.Preset
		m.setCookie(w, CookiePreset, *u.Preset)
	}
	if u.Pack != nil {
		packChanged = view.Pack != *u.Pack
		stored.Pack, view.Pack = *u.Pack, *u.Pack
		if *u.Pack == "" {
			m.clearCookie(w, CookiePack)
		} else {
			m.setCookie(w, CookiePack, *u.Pack)
		}
	}
	if u.Mode != nil {
		stored.Mode, view.Mode = *u.Mode, *u.Mode
	}

	m.savePrefs(w, r, stored)

	st := m.resolve(view, r)
	m.publish(r.Context(), st, packChanged)
	return st, nil
}

// SetTheme selects a design system.
func (m *Manager) SetTheme(w http.ResponseWriter, r *http.Request, name string) (State, error) {
	return m.Apply(w, r, Update{Theme: &name})
}

// SetPreset selects a color preset.
func (m *Manager) SetPreset(w http.ResponseWriter, r *http.Request, name string) (State, error) {
	return m.Apply(w, r, Update{Preset: &name})
}

// SetMode selects light, dark, or system mode.
func (m *Manager) SetMode(w http.ResponseWriter, r *http.Request, mode string) (State, error) {
	return m.Apply(w, r, Update{Mode: &mode})
}

// SetPack selects a theme pack; an empty name clears the selection.
func (m *Manager) SetPack(w http.ResponseWriter, r *http.Request, name string) (State, error) {
	return m.Apply(w, r, Update{Pack: &name})
}

// ToggleMode flips the resolved mode and persists the result. A visitor
// in system mode lands on the opposite of their system preference;
// toggling twice restores the stored preference's effect.
func (m *Manager) ToggleMode(w http.ResponseWriter, r *http.Request) (State, error) {
	next := string(palette.ModeDark)
	if m.State(r).ResolvedMode == palette.ModeDark {
		next = string(palette.ModeLight)
	}
	return m.Apply(w, r, Update{Mode: &next})
}

// Stylesheet renders the CSS for a resolved state. A selected pack that
// is missing from the catalog falls back to the plain theme generator.
func (m *Manager) Stylesheet(st State) string {
	opts := css.DefaultOptions()
	if st.Pack != "" {
		if pk, ok := m.catalog.Pack(st.Pack); ok {
			sys := m.catalog.LookupSystem(pk.System)
			return designsys.PackCSS(pk, sys, m.registry.Lookup(pk.Preset), opts)
		}
	}
	sys := m.catalog.LookupSystem(st.Theme)
	return designsys.ThemeCSS(sys, m.registry.Lookup(st.Preset), opts)
}

// PresetInfo is one entry in the preset catalog listing.
// @Description Preset catalog entry with primary color swatches.
type PresetInfo struct {
	Name         string `json:"name" example:"rose"`
	Label        string `json:"label" example:"Rose"`
	Description  string `json:"description,omitempty"`
	Active       bool   `json:"active"`
	PrimaryLight string `json:"primary_light" example:"347 77% 50%"`
	PrimaryDark  string `json:"primary_dark" example:"347 77% 58%"`
}

// AvailablePresets lists registered presets with swatch colors, marking
// the one the request resolves to.
func (m *Manager) AvailablePresets(r *http.Request) []PresetInfo {
	st := m.State(r)
	presets := m.registry.Presets()
	out := make([]PresetInfo, 0, len(presets))
	for _, p := range presets {
		out = append(out, PresetInfo{
			Name:         p.Name,
			Label:        p.Label,
			Description:  p.Description,
			Active:       p.Name == st.Preset,
			PrimaryLight: p.Light.Primary.HSL(),
			PrimaryDark:  p.Dark.Primary.HSL(),
		})
	}
	return out
}

// --- Resolution internals ---

func (m *Manager) validate(u Update) error {
	if u.Theme != nil && !m.catalog.HasSystem(*u.Theme) {
		return fmt.Errorf("%w %q", ErrUnknownTheme, *u.Theme)
	}
	if u.Preset != nil && !m.registry.Has(*u.Preset) {
		return fmt.Errorf("%w %q", ErrUnknownPreset, *u.Preset)
	}
	if u.Pack != nil && *u.Pack != "" && !m.catalog.HasPack(*u.Pack) {
		return fmt.Errorf("%w %q", ErrUnknownPack, *u.Pack)
	}
	if u.Mode != nil {
		mode := palette.Mode(*u.Mode)
		if !mode.Valid() {
			return fmt.Errorf("%w %q", ErrInvalidMode, *u.Mode)
		}
		if mode == palette.ModeDark && !m.cfg.EnableDarkMode {
			return ErrDarkModeDisabled
		}
	}
	return nil
}

// overlay layers cookies and query parameters over the stored prefs.
// Mode has no cookie layer; see the cookie name comment in theme.go.
func (m *Manager) overlay(p Prefs, r *http.Request) Prefs {
	if v := cookieValue(r, CookieTheme); v != "" {
		p.Theme = v
	}
	if v := cookieValue(r, CookiePreset); v != "" {
		p.Preset = v
	}
	if v := cookieValue(r, CookiePack); v != "" {
		p.Pack = v
	}

	q := r.URL.Query()
	if v := q.Get("theme"); v != "" {
		p.Theme = v
	}
	if v := q.Get("preset"); v != "" {
		p.Preset = v
	}
	if v := q.Get("pack"); v != "" {
		p.Pack = v
	}
	if v := q.Get("mode"); v != "" {
		p.Mode = v
	}
	return p
}

// resolve fills empty fields from config and corrects unknown values.
// A selected pack pins the system and preset; a pack name that is no
// longer in the catalog is kept in the state (the stylesheet path falls
// back) but stops pinning.
func (m *Manager) resolve(p Prefs, r *http.Request) State {
	theme, preset, pack := p.Theme, p.Preset, p.Pack
	if theme == "" {
		theme = m.cfg.DefaultTheme
	}
	if preset == "" {
		preset = m.cfg.DefaultPreset
	}
	mode := palette.Mode(p.Mode)
	if p.Mode == "" {
		mode = palette.Mode(m.cfg.DefaultMode)
	}

	if pack != "" {
		if pk, ok := m.catalog.Pack(pack); ok {
			theme, preset = pk.System, pk.Preset
		}
	}

	if !m.catalog.HasSystem(theme) {
		theme = designsys.DefaultSystem
	}
	if !m.registry.Has(preset) {
		preset = m.registry.DefaultName()
	}
	if !mode.Valid() {
		mode = palette.ModeSystem
	}

	resolved := mode
	if mode == palette.ModeSystem {
		resolved = systemHint(r)
	}

	return State{Theme: theme, Preset: preset, Mode: mode, ResolvedMode: resolved, Pack: pack}
}

// systemHint resolves "system" mode server-side. Browsers that send the
// Sec-CH-Prefers-Color-Scheme client hint get their actual preference;
// everything else resolves to light, matching first-paint behavior
// before the client script runs.
func systemHint(r *http.Request) palette.Mode {
	hint := strings.Trim(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), `"`)
	if strings.EqualFold(hint, "dark") {
		return palette.ModeDark
	}
	return palette.ModeLight
}

// --- Persistence internals ---

func (m *Manager) loadPrefs(r *http.Request) Prefs {
	if m.sessions == nil {
		return Prefs{}
	}
	sid := cookieValue(r, CookieSession)
	if sid == "" {
		return Prefs{}
	}
	p, err := m.sessions.GetSession(r.Context(), sid)
	if err != nil {
		m.logger.Warn("failed to load session prefs", zap.Error(err))
		return Prefs{}
	}
	return p
}

// savePrefs writes the preference document, minting a session ID when
// the visitor has none. Failures are logged, not returned: cookies
// already carry the selection, so losing the session copy only costs
// the server-side mode memory.
func (m *Manager) savePrefs(w http.ResponseWriter, r *http.Request, p Prefs) {
	if m.sessions == nil {
		return
	}
	sid := cookieValue(r, CookieSession)
	if sid == "" {
		sid = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     CookieSession,
			Value:    sid,
			Path:     "/",
			Domain:   m.cfg.CookieDomain,
			MaxAge:   int(m.cookieTTL().Seconds()),
			SameSite: http.SameSiteLaxMode,
			HttpOnly: true,
		})
	}
	if err := m.sessions.PutSession(r.Context(), sid, p); err != nil {
		m.logger.Warn("failed to save session prefs", zap.Error(err))
	}
}

func (m *Manager) publish(ctx context.Context, st State, packChanged bool) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(ctx, event.New(event.TopicThemeChanged, "theme", map[string]any{
		"theme":         st.Theme,
		"preset":        st.Preset,
		"mode":          string(st.Mode),
		"resolved_mode": string(st.ResolvedMode),
		"pack":          st.Pack,
	}))
	if packChanged {
		m.bus.Publish(ctx, event.New(event.TopicPackChanged, "theme", map[string]any{
			"pack": st.Pack,
		}))
	}
}

// --- Cookies ---

func (m *Manager) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.cfg.CookieDomain,
		MaxAge:   int(m.cookieTTL().Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   m.cfg.CookieDomain,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) cookieTTL() time.Duration {
	if m.cfg.SessionTTL > 0 {
		return m.cfg.SessionTTL
	}
	return 365 * 24 * time.Hour
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
