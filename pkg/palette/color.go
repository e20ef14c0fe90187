// Package palette defines the HSL color model, the semantic token record,
// and the preset registry consumed by the CSS generator, the theme manager,
// and the import/export helpers.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an HSL triple as used by CSS custom properties.
// Hue is in degrees (0-360), saturation and lightness in percent (0-100).
type Color struct {
	H int `json:"h" toml:"h"`
	S int `json:"s" toml:"s"`
	L int `json:"l" toml:"l"`
}

// HSL renders the color as a space-separated triple ("221 83% 53%"),
// the form consumed by CSS variables and shadcn theme JSON.
func (c Color) HSL() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

// HSLFunc renders the color as a complete hsl() function.
func (c Color) HSLFunc() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// WithLightness returns a copy of the color with lightness replaced.
func (c Color) WithLightness(l int) Color {
	return Color{H: c.H, S: c.S, L: l}
}

// WithSaturation returns a copy of the color with saturation replaced.
func (c Color) WithSaturation(s int) Color {
	return Color{H: c.H, S: s, L: c.L}
}

// String implements fmt.Stringer using the CSS variable form.
func (c Color) String() string { return c.HSL() }

// ParseHSL parses a space-separated HSL triple. Both "221 83% 53%" and
// "221 83 53" are accepted. Fractional components are truncated toward
// zero, matching how imported shadcn values are normalized. Components
// outside their valid range are rejected.
func ParseHSL(s string) (Color, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("hsl %q: want 3 components, got %d", s, len(parts))
	}

	vals := make([]int, 3)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return Color{}, fmt.Errorf("hsl %q: component %d: %w", s, i+1, err)
		}
		vals[i] = int(f)
	}

	c := Color{H: vals[0], S: vals[1], L: vals[2]}
	if c.H < 0 || c.H > 360 {
		return Color{}, fmt.Errorf("hsl %q: hue %d out of range [0,360]", s, c.H)
	}
	if c.S < 0 || c.S > 100 {
		return Color{}, fmt.Errorf("hsl %q: saturation %d out of range [0,100]", s, c.S)
	}
	if c.L < 0 || c.L > 100 {
		return Color{}, fmt.Errorf("hsl %q: lightness %d out of range [0,100]", s, c.L)
	}
	return c, nil
}
