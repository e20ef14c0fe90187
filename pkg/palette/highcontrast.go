package palette

// High contrast derivation. Backgrounds are pushed to the ends of the
// lightness scale, text to the opposite end, and the preset's brand hues
// are kept but re-anchored at full saturation so focus rings and buttons
// stay recognizable.

// HighContrast derives an accessibility-first variant of p. The light
// table uses near-black text on near-white surfaces, the dark table the
// inverse; primary and accent keep their hue from the base preset.
// Radius carries over unchanged.
func HighContrast(p Preset) Preset {
	return Preset{
		Name:        p.Name + "-hc",
		Label:       p.Label + " (High Contrast)",
		Description: "High contrast variant of " + p.Label,
		Light:       highContrastLight(p.Light),
		Dark:        highContrastDark(p.Dark),
	}
}

func highContrastLight(base ThemeTokens) ThemeTokens {
	return ThemeTokens{
		Background:            Color{0, 0, 100},
		Foreground:            Color{0, 0, 0},
		Card:                  Color{0, 0, 98},
		CardForeground:        Color{0, 0, 0},
		Popover:               Color{0, 0, 100},
		PopoverForeground:     Color{0, 0, 0},
		Primary:               Color{base.Primary.H, 100, 25},
		PrimaryForeground:     Color{0, 0, 100},
		Secondary:             Color{0, 0, 10},
		SecondaryForeground:   Color{0, 0, 100},
		Muted:                 Color{0, 0, 90},
		MutedForeground:       Color{0, 0, 15},
		Accent:                Color{base.Accent.H, 100, 20},
		AccentForeground:      Color{0, 0, 100},
		Destructive:           Color{0, 100, 30},
		DestructiveForeground: Color{0, 0, 100},
		Success:               Color{120, 100, 25},
		SuccessForeground:     Color{0, 0, 100},
		Warning:               Color{45, 100, 30},
		WarningForeground:     Color{0, 0, 0},
		Border:                Color{0, 0, 20},
		Input:                 Color{0, 0, 95},
		Ring:                  Color{base.Primary.H, 100, 30},
		Radius:                base.Radius,
	}
}

func highContrastDark(base ThemeTokens) ThemeTokens {
	return ThemeTokens{
		Background:            Color{0, 0, 0},
		Foreground:            Color{0, 0, 100},
		Card:                  Color{0, 0, 3},
		CardForeground:        Color{0, 0, 100},
		Popover:               Color{0, 0, 0},
		PopoverForeground:     Color{0, 0, 100},
		Primary:               Color{base.Primary.H, 100, 75},
		PrimaryForeground:     Color{0, 0, 0},
		Secondary:             Color{0, 0, 90},
		SecondaryForeground:   Color{0, 0, 0},
		Muted:                 Color{0, 0, 10},
		MutedForeground:       Color{0, 0, 85},
		Accent:                Color{base.Accent.H, 100, 80},
		AccentForeground:      Color{0, 0, 0},
		Destructive:           Color{0, 100, 70},
		DestructiveForeground: Color{0, 0, 0},
		Success:               Color{120, 100, 75},
		SuccessForeground:     Color{0, 0, 0},
		Warning:               Color{45, 100, 70},
		WarningForeground:     Color{0, 0, 0},
		Border:                Color{0, 0, 80},
		Input:                 Color{0, 0, 5},
		Ring:                  Color{base.Primary.H, 100, 70},
		Radius:                base.Radius,
	}
}

func highContrastPreset() Preset {
	base := defaultPreset()
	return Preset{
		Name:        "high-contrast",
		Label:       "High Contrast",
		Description: "Maximum contrast theme for low-vision and bright-light use",
		Light:       highContrastLight(base.Light),
		Dark:        highContrastDark(base.Dark),
	}
}

// highContrastDarkPreset pins the dark high contrast table to both modes
// for users who need a dark screen regardless of OS preference.
func highContrastDarkPreset() Preset {
	base := defaultPreset()
	dark := highContrastDark(base.Dark)
	return Preset{
		Name:        "high-contrast-dark",
		Label:       "High Contrast Dark",
		Description: "Always-dark maximum contrast theme",
		Light:       dark,
		Dark:        dark,
	}
}
