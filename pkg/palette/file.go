package palette

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Preset definition files let operators add palettes without recompiling.
// One preset per TOML file:
//
//	name = "acme"
//	label = "Acme"
//	description = "Corporate brand palette"
//
//	[light]
//	background = "0 0% 100%"
//	foreground = "222 47% 11%"
//	...
//	radius = 0.5
//
//	[dark]
//	...
//
// Every color token is required in both tables; radius defaults to 0.5.
// A file that fails validation registers nothing.

type presetFile struct {
	Name        string     `toml:"name"`
	Label       string     `toml:"label"`
	Description string     `toml:"description"`
	Light       tokenTable `toml:"light"`
	Dark        tokenTable `toml:"dark"`
}

type tokenTable struct {
	Background            string `toml:"background"`
	Foreground            string `toml:"foreground"`
	Card                  string `toml:"card"`
	CardForeground        string `toml:"card_foreground"`
	Popover               string `toml:"popover"`
	PopoverForeground     string `toml:"popover_foreground"`
	Primary               string `toml:"primary"`
	PrimaryForeground     string `toml:"primary_foreground"`
	Secondary             string `toml:"secondary"`
	SecondaryForeground   string `toml:"secondary_foreground"`
	Muted                 string `toml:"muted"`
	MutedForeground       string `toml:"muted_foreground"`
	Accent                string `toml:"accent"`
	AccentForeground      string `toml:"accent_foreground"`
	Destructive           string `toml:"destructive"`
	DestructiveForeground string `toml:"destructive_foreground"`
	Success               string `toml:"success"`
	SuccessForeground     string `toml:"success_foreground"`
	Warning               string `toml:"warning"`
	WarningForeground     string `toml:"warning_foreground"`
	Border                string `toml:"border"`
	Input                 string `toml:"input"`
	Ring                  string `toml:"ring"`

	Radius *float64 `toml:"radius"`
}

// LoadFile parses one TOML preset definition.
func LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset file: %w", err)
	}

	var pf presetFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return Preset{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	if pf.Name == "" {
		return Preset{}, fmt.Errorf("%s: preset name is required", filepath.Base(path))
	}
	label := pf.Label
	if label == "" {
		label = capitalize(pf.Name)
	}

	light, err := pf.Light.tokens()
	if err != nil {
		return Preset{}, fmt.Errorf("%s: light: %w", filepath.Base(path), err)
	}
	dark, err := pf.Dark.tokens()
	if err != nil {
		return Preset{}, fmt.Errorf("%s: dark: %w", filepath.Base(path), err)
	}

	return Preset{
		Name:        pf.Name,
		Label:       label,
		Description: pf.Description,
		Light:       light,
		Dark:        dark,
	}, nil
}

// LoadDir parses every *.toml file in dir, in filename order. The first
// invalid file aborts the load so a typo cannot half-register a palette set.
func LoadDir(dir string) ([]Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read preset dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	presets := make([]Preset, 0, len(names))
	for _, name := range names {
		p, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// EncodeFile renders a preset as a TOML definition file that LoadFile
// accepts, for tooling that converts palettes from other formats.
func EncodeFile(p Preset) ([]byte, error) {
	pf := presetFile{
		Name:        p.Name,
		Label:       p.Label,
		Description: p.Description,
		Light:       encodeTokens(p.Light),
		Dark:        encodeTokens(p.Dark),
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(pf); err != nil {
		return nil, fmt.Errorf("encode preset %q: %w", p.Name, err)
	}
	return buf.Bytes(), nil
}

func encodeTokens(t ThemeTokens) tokenTable {
	radius := t.Radius
	return tokenTable{
		Background:            t.Background.HSL(),
		Foreground:            t.Foreground.HSL(),
		Card:                  t.Card.HSL(),
		CardForeground:        t.CardForeground.HSL(),
		Popover:               t.Popover.HSL(),
		PopoverForeground:     t.PopoverForeground.HSL(),
		Primary:               t.Primary.HSL(),
		PrimaryForeground:     t.PrimaryForeground.HSL(),
		Secondary:             t.Secondary.HSL(),
		SecondaryForeground:   t.SecondaryForeground.HSL(),
		Muted:                 t.Muted.HSL(),
		MutedForeground:       t.MutedForeground.HSL(),
		Accent:                t.Accent.HSL(),
		AccentForeground:      t.AccentForeground.HSL(),
		Destructive:           t.Destructive.HSL(),
		DestructiveForeground: t.DestructiveForeground.HSL(),
		Success:               t.Success.HSL(),
		SuccessForeground:     t.SuccessForeground.HSL(),
		Warning:               t.Warning.HSL(),
		WarningForeground:     t.WarningForeground.HSL(),
		Border:                t.Border.HSL(),
		Input:                 t.Input.HSL(),
		Ring:                  t.Ring.HSL(),
		Radius:                &radius,
	}
}

// tokens validates and converts one mode table. All color tokens are
// required; the error lists every missing name at once so authors fix a
// file in one pass.
func (t tokenTable) tokens() (ThemeTokens, error) {
	var out ThemeTokens

	fields := []struct {
		name string
		raw  string
		dst  *Color
	}{
		{"background", t.Background, &out.Background},
		{"foreground", t.Foreground, &out.Foreground},
		{"card", t.Card, &out.Card},
		{"card_foreground", t.CardForeground, &out.CardForeground},
		{"popover", t.Popover, &out.Popover},
		{"popover_foreground", t.PopoverForeground, &out.PopoverForeground},
		{"primary", t.Primary, &out.Primary},
		{"primary_foreground", t.PrimaryForeground, &out.PrimaryForeground},
		{"secondary", t.Secondary, &out.Secondary},
		{"secondary_foreground", t.SecondaryForeground, &out.SecondaryForeground},
		{"muted", t.Muted, &out.Muted},
		{"muted_foreground", t.MutedForeground, &out.MutedForeground},
		{"accent", t.Accent, &out.Accent},
		{"accent_foreground", t.AccentForeground, &out.AccentForeground},
		{"destructive", t.Destructive, &out.Destructive},
		{"destructive_foreground", t.DestructiveForeground, &out.DestructiveForeground},
		{"success", t.Success, &out.Success},
		{"success_foreground", t.SuccessForeground, &out.SuccessForeground},
		{"warning", t.Warning, &out.Warning},
		{"warning_foreground", t.WarningForeground, &out.WarningForeground},
		{"border", t.Border, &out.Border},
		{"input", t.Input, &out.Input},
		{"ring", t.Ring, &out.Ring},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.raw) == "" {
			missing = append(missing, f.name)
			continue
		}
		c, err := ParseHSL(f.raw)
		if err != nil {
			return ThemeTokens{}, fmt.Errorf("token %s: %w", f.name, err)
		}
		*f.dst = c
	}
	if len(missing) > 0 {
		return ThemeTokens{}, fmt.Errorf("missing tokens: %s", strings.Join(missing, ", "))
	}

	out.Radius = 0.5
	if t.Radius != nil {
		if *t.Radius < 0 {
			return ThemeTokens{}, fmt.Errorf("radius %v must not be negative", *t.Radius)
		}
		out.Radius = *t.Radius
	}
	return out, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
