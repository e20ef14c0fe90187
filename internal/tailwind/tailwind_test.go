package tailwind

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/HerbHall/shadetree/pkg/palette"
)

func TestConfigWiresVariables(t *testing.T) {
	reg := palette.NewBuiltinRegistry()
	cfg := Config(reg, Options{})

	for _, want := range []string{
		"module.exports",
		`darkMode: ['class', '[data-theme="dark"]']`,
		"border: 'hsl(var(--border))'",
		"DEFAULT: 'hsl(var(--primary))'",
		"foreground: 'hsl(var(--primary-foreground))'",
		"lg: 'var(--radius)'",
		"md: 'calc(var(--radius) - 2px)'",
		"sm: 'calc(var(--radius) - 4px)'",
	} {
		if !strings.Contains(cfg, want) {
			t.Fatalf("config missing %q", want)
		}
	}

	// Variable-based config is preset independent.
	if strings.Contains(cfg, "preset-blue") {
		t.Fatal("config contains preset blocks without IncludeAllPresets")
	}
}

func TestConfigIncludeAllPresets(t *testing.T) {
	reg := palette.NewBuiltinRegistry()
	cfg := Config(reg, Options{IncludeAllPresets: true})

	for _, name := range reg.Names() {
		if !strings.Contains(cfg, "'preset-"+name+"'") {
			t.Fatalf("config missing preset block for %q", name)
		}
	}
	if !strings.Contains(cfg, "primary: 'hsl(221, 83%, 53%)'") {
		t.Fatal("config missing literal blue primary")
	}
}

func TestColorsJSON(t *testing.T) {
	blue := palette.NewBuiltinRegistry().Lookup("blue")

	out, err := ColorsJSON(blue)
	if err != nil {
		t.Fatalf("ColorsJSON() error = %v", err)
	}

	var m map[string]string
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(m) != 18 {
		t.Fatalf("len = %d, want 18 (9 per mode)", len(m))
	}
	if got := m["light-primary"]; got != "hsl(221, 83%, 53%)" {
		t.Fatalf("light-primary = %q, want hsl(221, 83%%, 53%%)", got)
	}
	if got := m["dark-primary"]; got != "hsl(224, 76%, 48%)" {
		t.Fatalf("dark-primary = %q, want hsl(224, 76%%, 48%%)", got)
	}

	// light-* keys come before dark-* keys in the emitted document.
	s := string(out)
	if strings.Index(s, "light-background") > strings.Index(s, "dark-background") {
		t.Fatal("light keys should precede dark keys")
	}
}

func TestColorsGo(t *testing.T) {
	rose := palette.NewBuiltinRegistry().Lookup("rose")

	src := ColorsGo(rose, "")
	if !strings.HasPrefix(src, "// Code generated by shadectl tailwind; DO NOT EDIT.") {
		t.Fatal("missing generated-code header")
	}
	if !strings.Contains(src, "package theme\n") {
		t.Fatal("default package name not applied")
	}
	if !strings.Contains(src, `"light-primary": "hsl(346, 77%, 50%)",`) {
		t.Fatal("missing rose light primary entry")
	}

	src = ColorsGo(rose, "palettes")
	if !strings.Contains(src, "package palettes\n") {
		t.Fatal("custom package name not applied")
	}
}
