// Package theme resolves and persists per-visitor theme selections and
// serves the theming HTTP surface: the dynamic stylesheet, the selection
// API, catalog listings, and custom theme CRUD.
//
// A selection is the triple (design system, color preset, mode) plus an
// optional pack that pins system and preset together. Resolution walks
// explicit query parameters, then cookies, then the session record, then
// the configured defaults; invalid values are corrected to the nearest
// registered fallback rather than rejected, so a stale cookie can never
// break a page load.
package theme

import (
	"errors"

	"github.com/HerbHall/shadetree/pkg/palette"
)

// Cookie names. Mode deliberately has no cookie: the client keeps mode
// in localStorage and resolves "system" against the media query, so the
// server only learns mode through the session record.
const (
	CookieTheme   = "shadetree_theme"
	CookiePreset  = "shadetree_preset"
	CookiePack    = "shadetree_pack"
	CookieSession = "shadetree_sid"
)

// Validation errors returned by Manager writes. Reads never fail;
// unknown stored values fall back instead.
var (
	ErrUnknownTheme     = errors.New("unknown design system")
	ErrUnknownPreset    = errors.New("unknown color preset")
	ErrUnknownPack      = errors.New("unknown theme pack")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrDarkModeDisabled = errors.New("dark mode is disabled")
)

// State is the effective theme selection for one request, after
// precedence resolution and fallback correction.
// @Description Effective theme selection with the resolved light/dark mode.
type State struct {
	Theme        string       `json:"theme" example:"material"`
	Preset       string       `json:"preset" example:"default"`
	Mode         palette.Mode `json:"mode" example:"system"`
	ResolvedMode palette.Mode `json:"resolved_mode" example:"light"`
	Pack         string       `json:"pack,omitempty" example:"neon-noir"`
}

// Prefs is the raw preference document stored per session. Empty fields
// mean "no preference"; resolution fills them from cookies and config.
type Prefs struct {
	Theme  string `json:"theme,omitempty"`
	Preset string `json:"preset,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Pack   string `json:"pack,omitempty"`
}

// Update is a partial selection change. Nil fields are left untouched;
// a non-nil empty Pack clears the pack selection.
type Update struct {
	Theme  *string `json:"theme"`
	Preset *string `json:"preset"`
	Mode   *string `json:"mode"`
	Pack   *string `json:"pack"`
}
