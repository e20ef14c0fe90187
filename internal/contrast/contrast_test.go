package contrast

import (
	"math"
	"testing"

	"github.com/HerbHall/shadetree/pkg/palette"
)

func TestRatioExtremes(t *testing.T) {
	black := palette.Color{H: 0, S: 0, L: 0}
	white := palette.Color{H: 0, S: 0, L: 100}

	if got := Ratio(black, white); math.Abs(got-21.0) > 0.01 {
		t.Fatalf("Ratio(black, white) = %v, want 21.0", got)
	}
	if got := Ratio(white, white); math.Abs(got-1.0) > 0.01 {
		t.Fatalf("Ratio(white, white) = %v, want 1.0", got)
	}
	if Ratio(black, white) != Ratio(white, black) {
		t.Fatal("Ratio is not symmetric")
	}
}

func TestRatioKnownValue(t *testing.T) {
	// #777 gray on white is the textbook ~4.48 AA near-miss.
	gray := palette.Color{H: 0, S: 0, L: 47}
	white := palette.Color{H: 0, S: 0, L: 100}

	got := Ratio(gray, white)
	if got < 4.3 || got > 4.7 {
		t.Fatalf("Ratio(gray47, white) = %v, want ~4.5", got)
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		ratio float64
		large bool
		want  Level
	}{
		{7.0, false, LevelAAA},
		{6.99, false, LevelAA},
		{4.5, false, LevelAA},
		{4.49, false, LevelFail},
		{4.5, true, LevelAAA},
		{3.0, true, LevelAA},
		{2.99, true, LevelFail},
	}
	for _, tc := range cases {
		if got := Evaluate(tc.ratio, tc.large); got != tc.want {
			t.Fatalf("Evaluate(%v, large=%v) = %v, want %v", tc.ratio, tc.large, got, tc.want)
		}
	}
}

func TestAuditPresetShape(t *testing.T) {
	blue := palette.NewBuiltinRegistry().Lookup("blue")
	findings := AuditPreset(blue)

	// 10 pairs per mode, light first.
	if len(findings) != 20 {
		t.Fatalf("len(findings) = %d, want 20", len(findings))
	}
	if findings[0].Mode != palette.ModeLight || findings[10].Mode != palette.ModeDark {
		t.Fatalf("mode ordering = %v/%v, want light then dark", findings[0].Mode, findings[10].Mode)
	}
	if findings[0].Pair != "foreground/background" {
		t.Fatalf("first pair = %q, want foreground/background", findings[0].Pair)
	}
	for _, f := range findings {
		if f.Ratio < 1 || f.Ratio > 21 {
			t.Fatalf("pair %s ratio %v outside [1,21]", f.Pair, f.Ratio)
		}
	}
}

func TestHighContrastMeetsAAA(t *testing.T) {
	hc := palette.NewBuiltinRegistry().Lookup("high-contrast")
	findings := AuditPreset(hc)

	for _, f := range findings {
		switch f.Pair {
		case "foreground/background", "card-foreground/card":
			if f.Ratio < AAANormal {
				t.Fatalf("%s %s ratio = %.2f, want >= %v", f.Mode, f.Pair, f.Ratio, AAANormal)
			}
		}
	}

	// Every text pair clears AA in both modes. The input/background pair
	// is structural: inputs sit near the surface color on purpose.
	for _, f := range TextFindings(findings) {
		if !f.Passes() {
			t.Fatalf("%s %s ratio = %.2f, fails AA", f.Mode, f.Pair, f.Ratio)
		}
	}
}

func TestTextFindingsDropsStructuralPairs(t *testing.T) {
	p := palette.NewBuiltinRegistry().Default()
	all := AuditPreset(p)
	text := TextFindings(all)

	if len(text) != len(all)-4 {
		t.Fatalf("len(text) = %d, want %d", len(text), len(all)-4)
	}
	for _, f := range text {
		if f.Pair == "border/background" || f.Pair == "input/background" {
			t.Fatalf("structural pair %q survived filter", f.Pair)
		}
	}
}
