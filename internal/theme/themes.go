package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HerbHall/shadetree/internal/event"
	"github.com/HerbHall/shadetree/internal/server"
	"github.com/HerbHall/shadetree/internal/shadcn"
	"github.com/HerbHall/shadetree/pkg/palette"
)

// Theme names end up in cookies, query strings, and CSS class names,
// so they are restricted to a URL- and selector-safe slug.
var themeNameRE = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// CreateThemeRequest is the body for registering a custom theme.
// @Description Custom theme definition. Both token tables are required.
type CreateThemeRequest struct {
	Name        string               `json:"name" example:"midnight"`
	Label       string               `json:"label" example:"Midnight"`
	Description string               `json:"description"`
	Light       *palette.ThemeTokens `json:"light"`
	Dark        *palette.ThemeTokens `json:"dark"`
}

// UpdateThemeRequest is the body for updating a custom theme. Omitted
// fields keep their current values.
// @Description Partial custom theme update.
type UpdateThemeRequest struct {
	Name        *string              `json:"name"`
	Label       *string              `json:"label"`
	Description *string              `json:"description"`
	Light       *palette.ThemeTokens `json:"light"`
	Dark        *palette.ThemeTokens `json:"dark"`
}

// themesAvailable guards the CRUD endpoints against running without a
// database (library and cookie-only deployments).
func (h *Handler) themesAvailable(w http.ResponseWriter, r *http.Request) bool {
	if h.store != nil {
		return true
	}
	server.Unavailable(w, "theme storage is not configured", r.URL.Path)
	return false
}

// handleListThemes returns all stored themes.
//
//	@Summary		List themes
//	@Description	Get all stored themes, built-ins first.
//	@Tags			themes
//	@Produce		json
//	@Success		200	{array}		Record			"Stored themes"
//	@Failure		503	{object}	server.Problem	"Theme storage not configured"
//	@Router			/themes [get]
func (h *Handler) handleListThemes(w http.ResponseWriter, r *http.Request) {
	if !h.themesAvailable(w, r) {
		return
	}
	recs, err := h.store.ListThemes(r.Context())
	if err != nil {
		h.logger.Error("failed to list themes", zap.Error(err))
		server.InternalError(w, "failed to list themes", r.URL.Path)
		return
	}
	if recs == nil {
		recs = []Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// handleGetTheme returns a single stored theme.
//
//	@Summary		Get theme
//	@Description	Get a stored theme by ID.
//	@Tags			themes
//	@Produce		json
//	@Param			id	path		string			true	"Theme ID"
//	@Success		200	{object}	Record			"Theme"
//	@Failure		404	{object}	server.Problem	"Theme not found"
//	@Router			/themes/{id} [get]
func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	if !h.themesAvailable(w, r) {
		return
	}
	id := r.PathValue("id")
	rec, err := h.store.GetTheme(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get theme", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to get theme", r.URL.Path)
		return
	}
	if rec == nil {
		server.NotFound(w, "theme not found", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleCreateTheme registers a new custom theme.
//
//	@Summary		Create theme
//	@Description	Register a custom theme. The theme is persisted, added to the live preset registry, and announced on the event bus.
//	@Tags			themes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateThemeRequest	true	"Theme definition"
//	@Success		201		{object}	Record				"Created theme"
//	@Failure		400		{object}	server.Problem		"Validation error"
//	@Failure		409		{object}	server.Problem		"Name already registered"
//	@Failure		503		{object}	server.Problem		"Theme storage not configured"
//	@Router			/themes [post]
//	@Security		BearerAuth
func (h *Handler) handleCreateTheme(w http.ResponseWriter, r *http.Request) {
	if !h.themesAvailable(w, r) {
		return
	}
	var req CreateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.BadRequest(w, "invalid request body", r.URL.Path)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		server.BadRequest(w, "name is required", r.URL.Path)
		return
	}
	if !themeNameRE.MatchString(req.Name) {
		server.BadRequest(w, "name must be a lowercase slug (letters, digits, hyphens)", r.URL.Path)
		return
	}
	if req.Light == nil || req.Dark == nil {
		server.BadRequest(w, "light and dark token tables are required", r.URL.Path)
		return
	}
	if req.Label == "" {
		req.Label = req.Name
	}

	if !h.reserveName(w, r, req.Name) {
		return
	}

	now := time.Now().UTC()
	rec := &Record{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Label:       req.Label,
		Description: req.Description,
		Light:       *req.Light,
		Dark:        *req.Dark,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.saveAndRegister(r.Context(), rec); err != nil {
		h.logger.Error("failed to create theme", zap.String("name", rec.Name), zap.Error(err))
		server.InternalError(w, "failed to store theme", r.URL.Path)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// handleImportTheme registers a theme from a shadcn/ui JSON document.
//
//	@Summary		Import shadcn theme
//	@Description	Parse a shadcn/ui theme JSON document, persist it as a custom theme, and add it to the live preset registry. The name may be overridden with ?name=.
//	@Tags			themes
//	@Accept			json
//	@Produce		json
//	@Param			name	query		string			false	"Override the theme name"
//	@Success		201		{object}	Record			"Imported theme"
//	@Failure		400		{object}	server.Problem	"Malformed shadcn document"
//	@Failure		409		{object}	server.Problem	"Name already registered"
//	@Failure		503		{object}	server.Problem	"Theme storage not configured"
//	@Router			/themes/import [post]
//	@Security		BearerAuth
func (h *Handler) handleImportTheme(w http.ResponseWriter, r *http.Request) {
	if !h.themesAvailable(w, r) {
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		server.BadRequest(w, "failed to read request body", r.URL.Path)
		return
	}

	p, err := shadcn.Parse(body)
	if err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	if name := r.URL.Query().Get("name"); name != "" {
		p.Name = name
	}
	if !themeNameRE.MatchString(p.Name) {
		server.BadRequest(w, "name must be a lowercase slug (letters, digits, hyphens)", r.URL.Path)
		return
	}
	if p.Label == "" {
		p.Label = p.Name
	}

	if !h.reserveName(w, r, p.Name) {
		return
	}

	now := time.Now().UTC()
	rec := &Record{
		ID:          uuid.NewString(),
		Name:        p.Name,
		Label:       p.Label,
		Description: p.Description,
		Light:       p.Light,
		Dark:        p.Dark,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.saveAndRegister(r.Context(), rec); err != nil {
		h.logger.Error("failed to import theme", zap.String("name", rec.Name), zap.Error(err))
		server.InternalError(w, "failed to store theme", r.URL.Path)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// handleUpdateTheme updates a custom theme.
//
//	@Summary		Update theme
//	@Description	Update a custom theme. Built-in themes cannot be modified. Renames move the live registry entry.
//	@Tags			themes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Theme ID"
//	@Param			request	body		UpdateThemeRequest	true	"Fields to update"
//	@Success		200		{object}	Record				"Updated theme"
//	@Failure		400		{object}	server.Problem		"Validation error"
//	@Failure		403		{object}	server.Problem		"Built-in theme"
//	@Failure		404		{object}	server.Problem		"Theme not found"
//	@Failure		409		{object}	server.Problem		"Name already registered"
//	@Router			/themes/{id} [put]
//	@Security		BearerAuth
func (h *Handler) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	if !h.themesAvailable(w, r) {
		return
	}
	id := r.PathValue("id")
	rec, err := h.store.GetTheme(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get theme for update", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to get theme", r.URL.Path)
		return
	}
	if rec == nil {
		server.NotFound(w, "theme not found", r.URL.Path)
		return
	}
	if rec.BuiltIn {
		server.Forbidden(w, "cannot modify a built-in theme", r.URL.Path)
		return
	}

	var req UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.BadRequest(w, "invalid request body", r.URL.Path)
		return
	}

	oldName := rec.Name
	if req.Name != nil && *req.Name != oldName {
		if !themeNameRE.MatchString(*req.Name) {
			server.BadRequest(w, "name must be a lowercase slug (letters, digits, hyphens)", r.URL.Path)
			return
		}
		if !h.reserveName(w, r, *req.Name) {
			return
		}
		rec.Name = *req.Name
	}
	if req.Label != nil {
		rec.Label = *req.Label
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}
	if req.Light != nil {
		rec.Light = *req.Light
	}
	if req.Dark != nil {
		rec.Dark = *req.Dark
	}
	rec.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateTheme(r.Context(), rec); err != nil {
		h.logger.Error("failed to update theme", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to store theme", r.URL.Path)
		return
	}

	// Move the registry entry so lookups see the new definition.
	registry := h.manager.Registry()
	registry.Remove(oldName)
	if err := registry.Register(rec.Preset()); err != nil {
		h.logger.Warn("failed to re-register updated theme", zap.String("name", rec.Name), zap.Error(err))
	}
	h.publishPresetRegistered(r.Context(), rec.Name)

	writeJSON(w, http.StatusOK, rec)
}

// handleDeleteTheme deletes a custom theme.
//
//	@Summary		Delete theme
//	@Description	Delete a custom theme and drop it from the live preset registry. Built-in themes cannot be deleted.
//	@Tags			themes
//	@Param			id	path	string	true	"Theme ID"
//	@Success		204	"Theme deleted"
//	@Failure		403	{object}	server.Problem	"Built-in theme"
//	@Failure		404	{object}	server.Problem	"Theme not found"
//	@Router			/themes/{id} [delete]
//	@Security		BearerAuth
func (h *Handler) handleDeleteTheme(w http.ResponseWriter, r *http.Request) {
	if !h.themesAvailable(w, r) {
		return
	}
	id := r.PathValue("id")
	rec, err := h.store.GetTheme(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get theme for delete", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to get theme", r.URL.Path)
		return
	}
	if rec == nil {
		server.NotFound(w, "theme not found", r.URL.Path)
		return
	}
	if rec.BuiltIn {
		server.Forbidden(w, "cannot delete a built-in theme", r.URL.Path)
		return
	}

	if err := h.store.DeleteTheme(r.Context(), id); err != nil {
		h.logger.Error("failed to delete theme", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to delete theme", r.URL.Path)
		return
	}
	h.manager.Registry().Remove(rec.Name)

	w.WriteHeader(http.StatusNoContent)
}

// reserveName rejects a theme name that is already stored or already
// live in the registry (for example a preset loaded from preset_dir).
func (h *Handler) reserveName(w http.ResponseWriter, r *http.Request, name string) bool {
	existing, err := h.store.GetThemeByName(r.Context(), name)
	if err != nil {
		h.logger.Error("failed to check theme name", zap.String("name", name), zap.Error(err))
		server.InternalError(w, "failed to check theme name", r.URL.Path)
		return false
	}
	if existing != nil || h.manager.Registry().Has(name) {
		server.Conflict(w, fmt.Sprintf("a theme named %q is already registered", name), r.URL.Path)
		return false
	}
	return true
}

// saveAndRegister persists a record, adds it to the live registry, and
// announces it on the bus.
func (h *Handler) saveAndRegister(ctx context.Context, rec *Record) error {
	if err := h.store.InsertTheme(ctx, rec); err != nil {
		return err
	}
	if err := h.manager.Registry().Register(rec.Preset()); err != nil {
		h.logger.Warn("failed to register stored theme", zap.String("name", rec.Name), zap.Error(err))
	}
	h.publishPresetRegistered(ctx, rec.Name)
	return nil
}

func (h *Handler) publishPresetRegistered(ctx context.Context, name string) {
	if h.bus == nil {
		return
	}
	h.bus.Publish(ctx, event.New(event.TopicPresetRegistered, "theme", map[string]any{
		"preset": name,
	}))
}
