// Package contrast implements WCAG 2.1 contrast-ratio math and the
// preset accessibility audit behind shadectl check.
package contrast

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/HerbHall/shadetree/pkg/palette"
)

// WCAG 2.1 contrast thresholds.
const (
	AANormal  = 4.5
	AALarge   = 3.0
	AAANormal = 7.0
	AAALarge  = 4.5
)

// Level is a WCAG conformance grade.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "FAIL"
)

// Ratio computes the WCAG contrast ratio between two colors. The result
// is in [1, 21] and symmetric in its arguments.
func Ratio(a, b palette.Color) float64 {
	la := luminance(a)
	lb := luminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// luminance is the WCAG relative luminance of an HSL color.
func luminance(c palette.Color) float64 {
	rgb := colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100)
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B)
}

// linearize undoes sRGB gamma for one channel.
func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// Evaluate grades a contrast ratio. Large text (18pt+, or 14pt bold)
// gets the relaxed thresholds.
func Evaluate(ratio float64, largeText bool) Level {
	aa, aaa := AANormal, AAANormal
	if largeText {
		aa, aaa = AALarge, AAALarge
	}
	switch {
	case ratio >= aaa:
		return LevelAAA
	case ratio >= aa:
		return LevelAA
	default:
		return LevelFail
	}
}

// Finding is one audited color pair.
type Finding struct {
	Pair  string       `json:"pair"`
	Mode  palette.Mode `json:"mode"`
	Ratio float64      `json:"ratio"`
	Level Level        `json:"level"`
}

// Passes reports whether the finding meets at least AA.
func (f Finding) Passes() bool {
	return f.Level != LevelFail
}

// AuditPreset checks the standard text and surface pairs of both modes
// and returns one finding per pair, light mode first. The border and
// input pairs are structural rather than text; they are reported with
// the same thresholds so callers can decide how to weigh them.
func AuditPreset(p palette.Preset) []Finding {
	var out []Finding
	for _, m := range []struct {
		mode   palette.Mode
		tokens palette.ThemeTokens
	}{
		{palette.ModeLight, p.Light},
		{palette.ModeDark, p.Dark},
	} {
		t := m.tokens
		pairs := []struct {
			name   string
			fg, bg palette.Color
		}{
			{"foreground/background", t.Foreground, t.Background},
			{"card-foreground/card", t.CardForeground, t.Card},
			{"primary-foreground/primary", t.PrimaryForeground, t.Primary},
			{"secondary-foreground/secondary", t.SecondaryForeground, t.Secondary},
			{"muted-foreground/muted", t.MutedForeground, t.Muted},
			{"destructive-foreground/destructive", t.DestructiveForeground, t.Destructive},
			{"success-foreground/success", t.SuccessForeground, t.Success},
			{"warning-foreground/warning", t.WarningForeground, t.Warning},
			{"border/background", t.Border, t.Background},
			{"input/background", t.Input, t.Background},
		}
		for _, pair := range pairs {
			ratio := Ratio(pair.fg, pair.bg)
			out = append(out, Finding{
				Pair:  pair.name,
				Mode:  m.mode,
				Ratio: ratio,
				Level: Evaluate(ratio, false),
			})
		}
	}
	return out
}

// TextFindings filters an audit down to the pairs that carry body text,
// dropping the structural border and input checks.
func TextFindings(findings []Finding) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if f.Pair == "border/background" || f.Pair == "input/background" {
			continue
		}
		out = append(out, f)
	}
	return out
}
