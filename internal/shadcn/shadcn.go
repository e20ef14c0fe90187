// Package shadcn converts between palette presets and the shadcn/ui theme
// JSON format used by themes.shadcn.com and the shadcn CLI.
package shadcn

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/HerbHall/shadetree/pkg/palette"
)

// document is the wire shape of a shadcn theme file. cssVars holds one
// string table per mode; values are "h s% l%" triples except radius.
type document struct {
	Name        string                       `json:"name"`
	Label       string                       `json:"label,omitempty"`
	ActiveColor map[string]string            `json:"activeColor,omitempty"`
	CSSVars     map[string]map[string]string `json:"cssVars"`
}

// exportVars mirrors the standard shadcn variable set in its canonical
// order. Success and warning are local extensions and stay out of exports
// so the files load cleanly in stock shadcn tooling.
type exportVars struct {
	Background            string `json:"background"`
	Foreground            string `json:"foreground"`
	Card                  string `json:"card"`
	CardForeground        string `json:"card-foreground"`
	Popover               string `json:"popover"`
	PopoverForeground     string `json:"popover-foreground"`
	Primary               string `json:"primary"`
	PrimaryForeground     string `json:"primary-foreground"`
	Secondary             string `json:"secondary"`
	SecondaryForeground   string `json:"secondary-foreground"`
	Muted                 string `json:"muted"`
	MutedForeground       string `json:"muted-foreground"`
	Accent                string `json:"accent"`
	AccentForeground      string `json:"accent-foreground"`
	Destructive           string `json:"destructive"`
	DestructiveForeground string `json:"destructive-foreground"`
	Border                string `json:"border"`
	Input                 string `json:"input"`
	Ring                  string `json:"ring"`
	Radius                string `json:"radius"`
}

type exportDocument struct {
	Name        string            `json:"name"`
	Label       string            `json:"label"`
	ActiveColor map[string]string `json:"activeColor"`
	CSSVars     struct {
		Light exportVars `json:"light"`
		Dark  exportVars `json:"dark"`
	} `json:"cssVars"`
}

// Parse decodes a shadcn theme JSON document into a preset. A document
// without cssVars, or without both light and dark tables, is rejected
// outright; within a table, missing tokens fall back to the stock shadcn
// defaults so partial themes from the wild still import.
func Parse(data []byte) (palette.Preset, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return palette.Preset{}, fmt.Errorf("decode shadcn theme: %w", err)
	}

	name := doc.Name
	if name == "" {
		name = "custom"
	}
	label := doc.Label
	if label == "" {
		label = titleCase(name)
	}

	if len(doc.CSSVars) == 0 {
		return palette.Preset{}, fmt.Errorf("shadcn theme %q: missing cssVars", name)
	}
	light, ok := doc.CSSVars["light"]
	if !ok {
		return palette.Preset{}, fmt.Errorf("shadcn theme %q: cssVars has no light table", name)
	}
	dark, ok := doc.CSSVars["dark"]
	if !ok {
		return palette.Preset{}, fmt.Errorf("shadcn theme %q: cssVars has no dark table", name)
	}

	return palette.Preset{
		Name:  name,
		Label: label,
		Light: parseVars(light),
		Dark:  parseVars(dark),
	}, nil
}

// Format renders a preset as an indented shadcn theme document, the
// inverse of Parse for the standard token set.
func Format(p palette.Preset) ([]byte, error) {
	var doc exportDocument
	doc.Name = p.Name
	doc.Label = p.Label
	doc.ActiveColor = map[string]string{
		"light": p.Light.Primary.HSL(),
		"dark":  p.Dark.Primary.HSL(),
	}
	doc.CSSVars.Light = formatVars(p.Light)
	doc.CSSVars.Dark = formatVars(p.Dark)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode shadcn theme %q: %w", p.Name, err)
	}
	return out, nil
}

// ParseFile loads a shadcn theme from disk.
func ParseFile(path string) (palette.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return palette.Preset{}, fmt.Errorf("read shadcn theme: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return palette.Preset{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WriteFile exports a preset as a shadcn theme file.
func WriteFile(path string, p palette.Preset) error {
	data, err := Format(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write shadcn theme: %w", err)
	}
	return nil
}

func parseVars(vars map[string]string) palette.ThemeTokens {
	pick := func(def string, keys ...string) palette.Color {
		raw := def
		for _, k := range keys {
			if s, ok := vars[k]; ok {
				raw = s
				break
			}
		}
		c, err := palette.ParseHSL(raw)
		if err != nil {
			// Malformed values degrade to neutral gray rather than
			// failing the whole import.
			return palette.Color{H: 0, S: 0, L: 50}
		}
		return c
	}

	return palette.ThemeTokens{
		Background:            pick("0 0% 100%", "background"),
		Foreground:            pick("222.2 47.4% 11.2%", "foreground"),
		Card:                  pick("0 0% 100%", "card", "background"),
		CardForeground:        pick("222.2 47.4% 11.2%", "card-foreground", "foreground"),
		Popover:               pick("0 0% 100%", "popover", "background"),
		PopoverForeground:     pick("222.2 47.4% 11.2%", "popover-foreground", "foreground"),
		Primary:               pick("221.2 83.2% 53.3%", "primary"),
		PrimaryForeground:     pick("210 40% 98%", "primary-foreground"),
		Secondary:             pick("210 40% 96.1%", "secondary"),
		SecondaryForeground:   pick("222.2 47.4% 11.2%", "secondary-foreground"),
		Muted:                 pick("210 40% 96.1%", "muted"),
		MutedForeground:       pick("215.4 16.3% 46.9%", "muted-foreground"),
		Accent:                pick("210 40% 96.1%", "accent"),
		AccentForeground:      pick("222.2 47.4% 11.2%", "accent-foreground"),
		Destructive:           pick("0 84.2% 60.2%", "destructive"),
		DestructiveForeground: pick("210 40% 98%", "destructive-foreground"),
		Success:               pick("142 76% 36%", "success"),
		SuccessForeground:     pick("0 0% 100%", "success-foreground"),
		Warning:               pick("38 92% 50%", "warning"),
		WarningForeground:     pick("0 0% 100%", "warning-foreground"),
		Border:                pick("214.3 31.8% 91.4%", "border"),
		Input:                 pick("214.3 31.8% 91.4%", "input"),
		Ring:                  pick("221.2 83.2% 53.3%", "ring"),
		Radius:                parseRadius(vars["radius"]),
	}
}

func formatVars(t palette.ThemeTokens) exportVars {
	return exportVars{
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
		Border:                t.Border.HSL(),
		Input:                 t.Input.HSL(),
		Ring:                  t.Ring.HSL(),
		Radius:                FormatRadius(t.Radius),
	}
}

// FormatRadius renders a radius value the way shadcn files carry it
// ("0.5rem", "0rem").
func FormatRadius(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64) + "rem"
}

// parseRadius extracts the numeric part of a radius value. Units and any
// other non-numeric characters are stripped; anything unparseable gets
// the 0.5rem default.
func parseRadius(s string) float64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0.5
	}
	r, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0.5
	}
	return r
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
