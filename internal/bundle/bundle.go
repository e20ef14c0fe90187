// Package bundle writes the theme catalog out as static files so a CDN
// or plain file server can serve stylesheets without running shadetree.
package bundle

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/HerbHall/shadetree/internal/css"
	"github.com/HerbHall/shadetree/internal/designsys"
	"github.com/HerbHall/shadetree/internal/version"
	"github.com/HerbHall/shadetree/internal/webassets"
	"github.com/HerbHall/shadetree/pkg/palette"
)

// Options configures a static build.
type Options struct {
	// System picks the design system the per-preset sheets are built
	// against. Empty means designsys.DefaultSystem.
	System string
	// Registry supplies the presets to build. Nil means the builtins.
	Registry *palette.Registry
	// Catalog supplies the systems and packs. Nil means the builtin
	// catalog.
	Catalog *designsys.Catalog
	// Minify additionally writes a .min.css next to each stylesheet.
	Minify bool
}

// Manifest describes one static build: what was generated, when, and
// how large each file came out.
type Manifest struct {
	Generator   string              `json:"generator"`
	Version     string              `json:"version"`
	GeneratedAt time.Time           `json:"generated_at"`
	System      string              `json:"system"`
	Minified    bool                `json:"minified"`
	Presets     []string            `json:"presets"`
	Packs       []string            `json:"packs"`
	Files       map[string]FileInfo `json:"files"`
}

// FileInfo is the per-file manifest entry.
type FileInfo struct {
	Size int64 `json:"size"`
}

// Build writes themes/{preset}.css, packs/{pack}.css, the client script,
// and manifest.json under dir. Output order follows the registry and
// catalog, so repeated builds from the same inputs are identical. Each
// file lands via temp file + rename; a failed build never leaves a
// half-written stylesheet behind.
func Build(ctx context.Context, dir string, opts Options) (*Manifest, error) {
	registry := opts.Registry
	if registry == nil {
		registry = palette.NewBuiltinRegistry()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = designsys.NewCatalog()
	}
	systemName := opts.System
	if systemName == "" {
		systemName = designsys.DefaultSystem
	}
	system, ok := catalog.System(systemName)
	if !ok {
		return nil, fmt.Errorf("unknown design system %q", systemName)
	}

	for _, sub := range []string{"themes", "packs"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	manifest := &Manifest{
		Generator:   "shadetree",
		Version:     version.Short(),
		GeneratedAt: time.Now().UTC(),
		System:      systemName,
		Minified:    opts.Minify,
		Presets:     registry.Names(),
		Packs:       catalog.PackNames(),
		Files:       make(map[string]FileInfo),
	}

	genOpts := css.DefaultOptions()
	for _, p := range registry.Presets() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheet := designsys.ThemeCSS(system, p, genOpts)
		if err := writeVariants(dir, filepath.Join("themes", p.Name), sheet, opts.Minify, manifest); err != nil {
			return nil, err
		}
	}

	for _, pk := range catalog.Packs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sys, ok := catalog.System(pk.System)
		if !ok {
			return nil, fmt.Errorf("pack %q references unknown design system %q", pk.Name, pk.System)
		}
		sheet := designsys.PackCSS(pk, sys, registry.Lookup(pk.Preset), genOpts)
		if err := writeVariants(dir, filepath.Join("packs", pk.Name), sheet, opts.Minify, manifest); err != nil {
			return nil, err
		}
	}

	if err := writeFile(dir, "shadetree.js", webassets.ThemeJS(), manifest); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	// The manifest does not list itself.
	if err := writeFile(dir, "manifest.json", append(data, '\n'), nil); err != nil {
		return nil, err
	}

	return manifest, nil
}

// writeVariants writes base.css and, when minify is set, base.min.css.
func writeVariants(dir, base, sheet string, minify bool, m *Manifest) error {
	if err := writeFile(dir, base+".css", []byte(sheet), m); err != nil {
		return err
	}
	if minify {
		if err := writeFile(dir, base+".min.css", []byte(css.Minify(sheet)), m); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes data to dir/name through a temp file in the target
// directory so the rename is atomic on the same filesystem.
func writeFile(dir, name string, data []byte, m *Manifest) error {
	target := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(filepath.Dir(target), ".shadetree-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("rename %s into place: %w", name, err)
	}

	if m != nil {
		m.Files[filepath.ToSlash(name)] = FileInfo{Size: int64(len(data))}
	}
	return nil
}
