package bundle

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestBuild_WritesCatalog(t *testing.T) {
	dir := t.TempDir()

	m, err := Build(context.Background(), dir, Options{Minify: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, name := range []string{
		"themes/default.css",
		"themes/default.min.css",
		"themes/blue.css",
		"themes/blue.min.css",
		"packs/corporate.css",
		"packs/corporate.min.css",
		"shadetree.js",
		"manifest.json",
	} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing output file %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
		if name == "manifest.json" {
			continue // the manifest does not list itself
		}
		if entry, ok := m.Files[name]; !ok {
			t.Errorf("%s missing from manifest", name)
		} else if entry.Size != info.Size() {
			t.Errorf("%s manifest size = %d, want %d", name, entry.Size, info.Size())
		}
	}

	if m.System != "material" {
		t.Errorf("System = %q, want %q", m.System, "material")
	}
	if len(m.Presets) == 0 || len(m.Packs) == 0 {
		t.Errorf("manifest inventory empty: %d presets, %d packs", len(m.Presets), len(m.Packs))
	}
}

func TestBuild_PlainOnly(t *testing.T) {
	dir := t.TempDir()

	if _, err := Build(context.Background(), dir, Options{}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "themes", "default.css")); err != nil {
		t.Errorf("missing plain stylesheet: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "themes", "*.min.css"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("found %d minified files without Minify", len(matches))
	}
}

func TestBuild_UnknownSystem(t *testing.T) {
	_, err := Build(context.Background(), t.TempDir(), Options{System: "win31"})
	if err == nil {
		t.Fatal("Build() with unknown system succeeded")
	}
}

func TestBuild_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Build(ctx, dir, Options{}); err == nil {
		t.Fatal("Build() with canceled context succeeded")
	}

	// No half-written temp files may survive a failed build.
	matches, err := filepath.Glob(filepath.Join(dir, "themes", ".shadetree-*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("found %d leftover temp files", len(matches))
	}
}

func TestBuild_Deterministic(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()

	if _, err := Build(context.Background(), dir1, Options{Minify: true}); err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	if _, err := Build(context.Background(), dir2, Options{Minify: true}); err != nil {
		t.Fatalf("second Build() error = %v", err)
	}

	for _, name := range []string{"themes/default.css", "packs/corporate.min.css", "shadetree.js"} {
		a, err := os.ReadFile(filepath.Join(dir1, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dir2, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between builds", name)
		}
	}
}

func TestBuild_ManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	built, err := Build(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if m.Generator != "shadetree" {
		t.Errorf("Generator = %q, want %q", m.Generator, "shadetree")
	}
	if len(m.Presets) != len(built.Presets) {
		t.Errorf("Presets = %d entries, want %d", len(m.Presets), len(built.Presets))
	}
	// The manifest can't contain its own final size; it records the
	// stylesheets and script.
	if _, ok := m.Files["themes/default.css"]; !ok {
		t.Error("manifest missing themes/default.css")
	}
}
