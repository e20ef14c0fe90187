package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/HerbHall/shadetree/internal/event"
	"github.com/HerbHall/shadetree/internal/server"
)

// Handler provides the theming HTTP surface.
type Handler struct {
	manager *Manager
	store   *Store
	bus     *event.Bus
	logger  *zap.Logger
}

// NewHandler creates a theme Handler. store may be nil, which disables
// the custom theme CRUD endpoints (they answer 503); bus may be nil.
func NewHandler(manager *Manager, store *Store, bus *event.Bus, logger *zap.Logger) *Handler {
	return &Handler{
		manager: manager,
		store:   store,
		bus:     bus,
		logger:  logger,
	}
}

// RegisterRoutes registers the theming routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /theme.css", h.handleThemeCSS)

	// Selection and catalogs (visitor self-service, never guarded)
	mux.HandleFunc("GET /api/v1/theme/selection", h.handleGetSelection)
	mux.HandleFunc("PUT /api/v1/theme/selection", h.handleSetSelection)
	mux.HandleFunc("POST /api/v1/theme/toggle", h.handleToggle)
	mux.HandleFunc("GET /api/v1/theme/presets", h.handleListPresets)
	mux.HandleFunc("GET /api/v1/theme/systems", h.handleListSystems)
	mux.HandleFunc("GET /api/v1/theme/packs", h.handleListPacks)
	mux.HandleFunc("GET /api/v1/theme/switcher", h.handleSwitcher)

	// Custom theme CRUD (mutations guarded when auth is enabled;
	// literal paths before wildcard)
	mux.HandleFunc("GET /api/v1/themes", h.handleListThemes)
	mux.HandleFunc("POST /api/v1/themes", h.handleCreateTheme)
	mux.HandleFunc("POST /api/v1/themes/import", h.handleImportTheme)
	mux.HandleFunc("GET /api/v1/themes/{id}", h.handleGetTheme)
	mux.HandleFunc("PUT /api/v1/themes/{id}", h.handleUpdateTheme)
	mux.HandleFunc("DELETE /api/v1/themes/{id}", h.handleDeleteTheme)
}

// handleThemeCSS serves the stylesheet for the request's resolved
// selection.
//
//	@Summary		Theme stylesheet
//	@Description	Serve the CSS for the visitor's effective theme selection. Honors ?theme=, ?preset=, ?pack= and ?mode= overrides and revalidates with ETag.
//	@Tags			theme
//	@Produce		css
//	@Success		200	{string}	string	"Stylesheet text"
//	@Router			/theme.css [get]
func (h *Handler) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	st := h.manager.State(r)
	etag := fmt.Sprintf(`"%s-%s-%s-%s"`, st.Theme, st.Preset, st.Mode, st.Pack)

	// Ask the browser to send its color-scheme preference so system
	// mode resolves correctly on subsequent requests.
	w.Header().Set("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
	w.Header().Set("Vary", "Cookie")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Header().Set("ETag", etag)

	if etagMatch(r.Header.Get("If-None-Match"), etag) {
		stylesheetRevalidations.Inc()
		w.WriteHeader(http.StatusNotModified)
		return
	}

	sheet := h.manager.Stylesheet(st)
	stylesheetsGenerated.WithLabelValues(st.Preset, string(st.Mode)).Inc()

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(sheet))
}

// etagMatch reports whether an If-None-Match header matches the given
// entity tag. Weak comparison: validators match regardless of W/.
func etagMatch(header, etag string) bool {
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == etag {
			return true
		}
	}
	return false
}

// handleGetSelection returns the effective selection state.
//
//	@Summary		Get theme selection
//	@Description	Get the visitor's effective theme selection, including the resolved light/dark mode.
//	@Tags			theme
//	@Produce		json
//	@Success		200	{object}	State	"Effective selection"
//	@Router			/theme/selection [get]
func (h *Handler) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.State(r))
}

// handleSetSelection applies a partial selection update.
//
//	@Summary		Update theme selection
//	@Description	Apply a partial selection update. Omitted fields keep their current values; an empty pack clears the pack.
//	@Tags			theme
//	@Accept			json
//	@Produce		json
//	@Param			request	body		Update			true	"Fields to change"
//	@Success		200		{object}	State			"New effective selection"
//	@Failure		400		{object}	server.Problem	"Unknown value"
//	@Router			/theme/selection [put]
func (h *Handler) handleSetSelection(w http.ResponseWriter, r *http.Request) {
	var u Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		server.BadRequest(w, "invalid request body", r.URL.Path)
		return
	}

	// Nothing to change: report the current state without minting a
	// session or publishing an event.
	if u.Theme == nil && u.Preset == nil && u.Mode == nil && u.Pack == nil {
		writeJSON(w, http.StatusOK, h.manager.State(r))
		return
	}

	st, err := h.manager.Apply(w, r, u)
	if err != nil {
		h.writeSelectionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// handleToggle flips between light and dark mode.
//
//	@Summary		Toggle theme mode
//	@Description	Flip the resolved mode and persist the result.
//	@Tags			theme
//	@Produce		json
//	@Success		200	{object}	State			"New effective selection"
//	@Failure		400	{object}	server.Problem	"Dark mode disabled"
//	@Router			/theme/toggle [post]
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	st, err := h.manager.ToggleMode(w, r)
	if err != nil {
		h.writeSelectionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) writeSelectionError(w http.ResponseWriter, r *http.Request, err error) {
	if isValidationError(err) {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}
	h.logger.Error("failed to update theme selection", zap.Error(err))
	server.InternalError(w, "failed to update theme selection", r.URL.Path)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrUnknownTheme) ||
		errors.Is(err, ErrUnknownPreset) ||
		errors.Is(err, ErrUnknownPack) ||
		errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrDarkModeDisabled)
}

// handleListPresets returns the preset catalog.
//
//	@Summary		List color presets
//	@Description	Get all registered color presets with primary swatches, marking the active one.
//	@Tags			theme
//	@Produce		json
//	@Success		200	{array}	PresetInfo	"Preset catalog"
//	@Router			/theme/presets [get]
func (h *Handler) handleListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.AvailablePresets(r))
}

// SystemInfo is one entry in the design system catalog listing.
// @Description Design system catalog entry.
type SystemInfo struct {
	Name          string `json:"name" example:"material"`
	Label         string `json:"label" example:"Material"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	DefaultPreset string `json:"default_preset,omitempty"`
	Active        bool   `json:"active"`
}

// handleListSystems returns the design system catalog.
//
//	@Summary		List design systems
//	@Description	Get all design systems, marking the active one.
//	@Tags			theme
//	@Produce		json
//	@Success		200	{array}	SystemInfo	"Design system catalog"
//	@Router			/theme/systems [get]
func (h *Handler) handleListSystems(w http.ResponseWriter, r *http.Request) {
	st := h.manager.State(r)
	systems := h.manager.Catalog().Systems()
	out := make([]SystemInfo, 0, len(systems))
	for _, s := range systems {
		out = append(out, SystemInfo{
			Name:          s.Name,
			Label:         s.Label,
			Description:   s.Description,
			Category:      s.Category,
			DefaultPreset: s.DefaultPreset,
			Active:        s.Name == st.Theme,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// PackInfo is one entry in the pack catalog listing.
// @Description Theme pack catalog entry.
type PackInfo struct {
	Name        string `json:"name" example:"neon-noir"`
	Label       string `json:"label" example:"Neon Noir"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty" example:"bold"`
	System      string `json:"system" example:"material"`
	Preset      string `json:"preset" example:"violet"`
	Active      bool   `json:"active"`
}

// handleListPacks returns the theme pack catalog.
//
//	@Summary		List theme packs
//	@Description	Get all theme packs, marking the selected one.
//	@Tags			theme
//	@Produce		json
//	@Success		200	{array}	PackInfo	"Pack catalog"
//	@Router			/theme/packs [get]
func (h *Handler) handleListPacks(w http.ResponseWriter, r *http.Request) {
	st := h.manager.State(r)
	packs := h.manager.Catalog().Packs()
	out := make([]PackInfo, 0, len(packs))
	for _, pk := range packs {
		out = append(out, PackInfo{
			Name:        pk.Name,
			Label:       pk.Label,
			Description: pk.Description,
			Category:    pk.Category,
			System:      pk.System,
			Preset:      pk.Preset,
			Active:      pk.Name == st.Pack,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleSwitcher returns the switcher widget HTML fragment.
//
//	@Summary		Theme switcher widget
//	@Description	Get the theme switcher as an HTML fragment for server-rendered pages.
//	@Tags			theme
//	@Produce		html
//	@Success		200	{string}	string	"HTML fragment"
//	@Router			/theme/switcher [get]
func (h *Handler) handleSwitcher(w http.ResponseWriter, r *http.Request) {
	fragment := Switcher(
		h.manager.State(r),
		h.manager.AvailablePresets(r),
		h.manager.Catalog().Packs(),
		h.manager.DarkModeEnabled(),
	)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(fragment))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
