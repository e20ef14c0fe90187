// Package tailwind exports theme palettes as Tailwind CSS build inputs:
// a tailwind.config.js wired to the generated custom properties, plus
// flat color tables for static pipelines.
package tailwind

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HerbHall/shadetree/pkg/palette"
)

// Options controls config generation.
type Options struct {
	// IncludeAllPresets adds a preset-{name} block per registered preset
	// with literal light-mode values, for builds that bake in colors
	// instead of resolving variables at render time.
	IncludeAllPresets bool
}

// groups are the tokens that carry a paired foreground, in emission order.
var groups = []string{
	"primary", "secondary", "destructive", "muted",
	"accent", "popover", "card", "success", "warning",
}

// Config renders a tailwind.config.js whose color scale resolves through
// the theme's CSS custom properties. One config serves every preset and
// mode; dark mode follows the same selectors the stylesheet generator
// emits.
func Config(reg *palette.Registry, opts Options) string {
	var b strings.Builder

	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")
	b.WriteString("  darkMode: ['class', '[data-theme=\"dark\"]'],\n")
	b.WriteString("  content: [\n")
	b.WriteString("    './templates/**/*.html',\n")
	b.WriteString("    './static/**/*.js',\n")
	b.WriteString("  ],\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      colors: {\n")

	for _, name := range []string{"border", "input", "ring", "background", "foreground"} {
		fmt.Fprintf(&b, "        %s: 'hsl(var(--%s))',\n", name, name)
	}
	for _, name := range groups {
		fmt.Fprintf(&b, "        %s: {\n", name)
		fmt.Fprintf(&b, "          DEFAULT: 'hsl(var(--%s))',\n", name)
		fmt.Fprintf(&b, "          foreground: 'hsl(var(--%s-foreground))',\n", name)
		b.WriteString("        },\n")
	}

	if opts.IncludeAllPresets && reg != nil {
		for _, p := range reg.Presets() {
			fmt.Fprintf(&b, "        'preset-%s': {\n", p.Name)
			fmt.Fprintf(&b, "          primary: '%s',\n", p.Light.Primary.HSLFunc())
			fmt.Fprintf(&b, "          secondary: '%s',\n", p.Light.Secondary.HSLFunc())
			fmt.Fprintf(&b, "          accent: '%s',\n", p.Light.Accent.HSLFunc())
			fmt.Fprintf(&b, "          muted: '%s',\n", p.Light.Muted.HSLFunc())
			b.WriteString("        },\n")
		}
	}

	b.WriteString("      },\n")
	b.WriteString("      borderRadius: {\n")
	b.WriteString("        lg: 'var(--radius)',\n")
	b.WriteString("        md: 'calc(var(--radius) - 2px)',\n")
	b.WriteString("        sm: 'calc(var(--radius) - 4px)',\n")
	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("  plugins: [],\n")
	b.WriteString("}\n")

	return b.String()
}

// flatColors is the static export shape: one literal hsl() value per
// mode-qualified token. Field order is the emission order.
type flatColors struct {
	LightBackground        string `json:"light-background"`
	LightForeground        string `json:"light-foreground"`
	LightPrimary           string `json:"light-primary"`
	LightPrimaryForeground string `json:"light-primary-foreground"`
	LightSecondary         string `json:"light-secondary"`
	LightMuted             string `json:"light-muted"`
	LightAccent            string `json:"light-accent"`
	LightDestructive       string `json:"light-destructive"`
	LightBorder            string `json:"light-border"`
	DarkBackground         string `json:"dark-background"`
	DarkForeground         string `json:"dark-foreground"`
	DarkPrimary            string `json:"dark-primary"`
	DarkPrimaryForeground  string `json:"dark-primary-foreground"`
	DarkSecondary          string `json:"dark-secondary"`
	DarkMuted              string `json:"dark-muted"`
	DarkAccent             string `json:"dark-accent"`
	DarkDestructive        string `json:"dark-destructive"`
	DarkBorder             string `json:"dark-border"`
}

func flatten(p palette.Preset) flatColors {
	return flatColors{
		LightBackground:        p.Light.Background.HSLFunc(),
		LightForeground:        p.Light.Foreground.HSLFunc(),
		LightPrimary:           p.Light.Primary.HSLFunc(),
		LightPrimaryForeground: p.Light.PrimaryForeground.HSLFunc(),
		LightSecondary:         p.Light.Secondary.HSLFunc(),
		LightMuted:             p.Light.Muted.HSLFunc(),
		LightAccent:            p.Light.Accent.HSLFunc(),
		LightDestructive:       p.Light.Destructive.HSLFunc(),
		LightBorder:            p.Light.Border.HSLFunc(),
		DarkBackground:         p.Dark.Background.HSLFunc(),
		DarkForeground:         p.Dark.Foreground.HSLFunc(),
		DarkPrimary:            p.Dark.Primary.HSLFunc(),
		DarkPrimaryForeground:  p.Dark.PrimaryForeground.HSLFunc(),
		DarkSecondary:          p.Dark.Secondary.HSLFunc(),
		DarkMuted:              p.Dark.Muted.HSLFunc(),
		DarkAccent:             p.Dark.Accent.HSLFunc(),
		DarkDestructive:        p.Dark.Destructive.HSLFunc(),
		DarkBorder:             p.Dark.Border.HSLFunc(),
	}
}

// ColorsJSON exports a preset's main colors as a flat JSON object with
// literal hsl() values, keyed light-*/dark-*.
func ColorsJSON(p palette.Preset) ([]byte, error) {
	out, err := json.MarshalIndent(flatten(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tailwind colors for %q: %w", p.Name, err)
	}
	return out, nil
}

// ColorsGo renders a preset's main colors as a generated Go source file
// exposing a string map, for pipelines that embed palettes in Go binaries.
// pkg defaults to "theme" when empty.
func ColorsGo(p palette.Preset, pkg string) string {
	if pkg == "" {
		pkg = "theme"
	}

	f := flatten(p)
	entries := []struct{ key, val string }{
		{"light-background", f.LightBackground},
		{"light-foreground", f.LightForeground},
		{"light-primary", f.LightPrimary},
		{"light-primary-foreground", f.LightPrimaryForeground},
		{"light-secondary", f.LightSecondary},
		{"light-muted", f.LightMuted},
		{"light-accent", f.LightAccent},
		{"light-destructive", f.LightDestructive},
		{"light-border", f.LightBorder},
		{"dark-background", f.DarkBackground},
		{"dark-foreground", f.DarkForeground},
		{"dark-primary", f.DarkPrimary},
		{"dark-primary-foreground", f.DarkPrimaryForeground},
		{"dark-secondary", f.DarkSecondary},
		{"dark-muted", f.DarkMuted},
		{"dark-accent", f.DarkAccent},
		{"dark-destructive", f.DarkDestructive},
		{"dark-border", f.DarkBorder},
	}

	var b strings.Builder
	b.WriteString("// Code generated by shadectl tailwind; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// Colors holds the %q palette as literal hsl() values.\n", p.Name)
	b.WriteString("var Colors = map[string]string{\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\t%q: %q,\n", e.key, e.val)
	}
	b.WriteString("}\n")
	return b.String()
}
