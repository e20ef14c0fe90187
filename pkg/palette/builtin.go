package palette

// Built-in presets. Values follow the shadcn/ui HSL scales; each preset
// carries a full light and dark table so generated stylesheets never mix
// palettes.

// Builtins returns fresh copies of the built-in presets in listing order.
// The first entry is the registry default.
func Builtins() []Preset {
	return []Preset{
		defaultPreset(),
		shadcnPreset(),
		bluePreset(),
		greenPreset(),
		purplePreset(),
		orangePreset(),
		rosePreset(),
		highContrastPreset(),
		highContrastDarkPreset(),
	}
}

// neutralZinc is the shared neutral table used by both the default and
// shadcn presets.
func neutralZinc() (light, dark ThemeTokens) {
	light = ThemeTokens{
		Background:            Color{0, 0, 100},
		Foreground:            Color{240, 10, 4},
		Card:                  Color{0, 0, 100},
		CardForeground:        Color{240, 10, 4},
		Popover:               Color{0, 0, 100},
		PopoverForeground:     Color{240, 10, 4},
		Primary:               Color{240, 6, 10},
		PrimaryForeground:     Color{0, 0, 98},
		Secondary:             Color{240, 5, 96},
		SecondaryForeground:   Color{240, 6, 10},
		Muted:                 Color{240, 5, 96},
		MutedForeground:       Color{240, 4, 46},
		Accent:                Color{240, 5, 96},
		AccentForeground:      Color{240, 6, 10},
		Destructive:           Color{0, 84, 60},
		DestructiveForeground: Color{0, 0, 98},
		Success:               Color{142, 76, 36},
		SuccessForeground:     Color{0, 0, 98},
		Warning:               Color{38, 92, 50},
		WarningForeground:     Color{0, 0, 98},
		Border:                Color{240, 6, 90},
		Input:                 Color{240, 6, 90},
		Ring:                  Color{240, 6, 10},
		Radius:                0.5,
	}
	dark = ThemeTokens{
		Background:            Color{240, 10, 4},
		Foreground:            Color{0, 0, 98},
		Card:                  Color{240, 10, 4},
		CardForeground:        Color{0, 0, 98},
		Popover:               Color{240, 10, 4},
		PopoverForeground:     Color{0, 0, 98},
		Primary:               Color{0, 0, 98},
		PrimaryForeground:     Color{240, 6, 10},
		Secondary:             Color{240, 4, 16},
		SecondaryForeground:   Color{0, 0, 98},
		Muted:                 Color{240, 4, 16},
		MutedForeground:       Color{240, 5, 65},
		Accent:                Color{240, 4, 16},
		AccentForeground:      Color{0, 0, 98},
		Destructive:           Color{0, 62, 30},
		DestructiveForeground: Color{0, 0, 98},
		Success:               Color{142, 69, 28},
		SuccessForeground:     Color{0, 0, 98},
		Warning:               Color{38, 92, 40},
		WarningForeground:     Color{0, 0, 98},
		Border:                Color{240, 4, 16},
		Input:                 Color{240, 4, 16},
		Ring:                  Color{240, 5, 84},
		Radius:                0.5,
	}
	return light, dark
}

func defaultPreset() Preset {
	light, dark := neutralZinc()
	return Preset{
		Name:        "default",
		Label:       "Default",
		Description: "Neutral zinc theme with professional aesthetics",
		Light:       light,
		Dark:        dark,
	}
}

func shadcnPreset() Preset {
	light, dark := neutralZinc()
	return Preset{
		Name:        "shadcn",
		Label:       "Shadcn",
		Description: "Shadcn-compatible neutral theme",
		Light:       light,
		Dark:        dark,
	}
}

func bluePreset() Preset {
	return Preset{
		Name:        "blue",
		Label:       "Blue",
		Description: "Professional blue theme for corporate applications",
		Light: ThemeTokens{
			Background:            Color{0, 0, 100},
			Foreground:            Color{222, 47, 11},
			Card:                  Color{0, 0, 100},
			CardForeground:        Color{222, 47, 11},
			Popover:               Color{0, 0, 100},
			PopoverForeground:     Color{222, 47, 11},
			Primary:               Color{221, 83, 53},
			PrimaryForeground:     Color{210, 40, 98},
			Secondary:             Color{210, 40, 96},
			SecondaryForeground:   Color{222, 47, 11},
			Muted:                 Color{210, 40, 96},
			MutedForeground:       Color{215, 16, 47},
			Accent:                Color{210, 40, 96},
			AccentForeground:      Color{222, 47, 11},
			Destructive:           Color{0, 84, 60},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 76, 36},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 50},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{214, 32, 91},
			Input:                 Color{214, 32, 91},
			Ring:                  Color{221, 83, 53},
			Radius:                0.5,
		},
		Dark: ThemeTokens{
			Background:            Color{222, 47, 11},
			Foreground:            Color{210, 40, 98},
			Card:                  Color{222, 47, 11},
			CardForeground:        Color{210, 40, 98},
			Popover:               Color{222, 47, 11},
			PopoverForeground:     Color{210, 40, 98},
			Primary:               Color{224, 76, 48},
			PrimaryForeground:     Color{210, 40, 98},
			Secondary:             Color{217, 33, 17},
			SecondaryForeground:   Color{210, 40, 98},
			Muted:                 Color{217, 33, 17},
			MutedForeground:       Color{215, 20, 65},
			Accent:                Color{217, 33, 17},
			AccentForeground:      Color{210, 40, 98},
			Destructive:           Color{0, 62, 30},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 69, 28},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 40},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{217, 33, 17},
			Input:                 Color{217, 33, 17},
			Ring:                  Color{224, 76, 48},
			Radius:                0.5,
		},
	}
}

func greenPreset() Preset {
	return Preset{
		Name:        "green",
		Label:       "Green",
		Description: "Nature-inspired green theme for growth and sustainability",
		Light: ThemeTokens{
			Background:            Color{0, 0, 100},
			Foreground:            Color{140, 40, 10},
			Card:                  Color{0, 0, 100},
			CardForeground:        Color{140, 40, 10},
			Popover:               Color{0, 0, 100},
			PopoverForeground:     Color{140, 40, 10},
			Primary:               Color{142, 76, 36},
			PrimaryForeground:     Color{138, 76, 97},
			Secondary:             Color{138, 30, 95},
			SecondaryForeground:   Color{140, 40, 10},
			Muted:                 Color{138, 30, 95},
			MutedForeground:       Color{140, 15, 45},
			Accent:                Color{138, 30, 95},
			AccentForeground:      Color{140, 40, 10},
			Destructive:           Color{0, 84, 60},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 76, 36},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 50},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{140, 20, 88},
			Input:                 Color{140, 20, 88},
			Ring:                  Color{142, 76, 36},
			Radius:                0.5,
		},
		Dark: ThemeTokens{
			Background:            Color{140, 40, 8},
			Foreground:            Color{138, 76, 97},
			Card:                  Color{140, 40, 8},
			CardForeground:        Color{138, 76, 97},
			Popover:               Color{140, 40, 8},
			PopoverForeground:     Color{138, 76, 97},
			Primary:               Color{142, 69, 45},
			PrimaryForeground:     Color{140, 40, 8},
			Secondary:             Color{140, 30, 16},
			SecondaryForeground:   Color{138, 76, 97},
			Muted:                 Color{140, 30, 16},
			MutedForeground:       Color{140, 20, 60},
			Accent:                Color{140, 30, 16},
			AccentForeground:      Color{138, 76, 97},
			Destructive:           Color{0, 62, 30},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 69, 28},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 40},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{140, 30, 16},
			Input:                 Color{140, 30, 16},
			Ring:                  Color{142, 69, 45},
			Radius:                0.5,
		},
	}
}

func purplePreset() Preset {
	return Preset{
		Name:        "purple",
		Label:       "Purple",
		Description: "Creative purple theme for premium applications",
		Light: ThemeTokens{
			Background:            Color{0, 0, 100},
			Foreground:            Color{270, 50, 11},
			Card:                  Color{0, 0, 100},
			CardForeground:        Color{270, 50, 11},
			Popover:               Color{0, 0, 100},
			PopoverForeground:     Color{270, 50, 11},
			Primary:               Color{270, 50, 50},
			PrimaryForeground:     Color{270, 80, 98},
			Secondary:             Color{270, 30, 96},
			SecondaryForeground:   Color{270, 50, 11},
			Muted:                 Color{270, 30, 96},
			MutedForeground:       Color{270, 15, 45},
			Accent:                Color{270, 30, 96},
			AccentForeground:      Color{270, 50, 11},
			Destructive:           Color{0, 84, 60},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 76, 36},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 50},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{270, 20, 90},
			Input:                 Color{270, 20, 90},
			Ring:                  Color{270, 50, 50},
			Radius:                0.5,
		},
		Dark: ThemeTokens{
			Background:            Color{270, 50, 8},
			Foreground:            Color{270, 80, 98},
			Card:                  Color{270, 50, 8},
			CardForeground:        Color{270, 80, 98},
			Popover:               Color{270, 50, 8},
			PopoverForeground:     Color{270, 80, 98},
			Primary:               Color{270, 60, 60},
			PrimaryForeground:     Color{270, 50, 8},
			Secondary:             Color{270, 30, 16},
			SecondaryForeground:   Color{270, 80, 98},
			Muted:                 Color{270, 30, 16},
			MutedForeground:       Color{270, 20, 60},
			Accent:                Color{270, 30, 16},
			AccentForeground:      Color{270, 80, 98},
			Destructive:           Color{0, 62, 30},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 69, 28},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 40},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{270, 30, 16},
			Input:                 Color{270, 30, 16},
			Ring:                  Color{270, 60, 60},
			Radius:                0.5,
		},
	}
}

func orangePreset() Preset {
	return Preset{
		Name:        "orange",
		Label:       "Orange",
		Description: "Energetic orange theme for warm, engaging interfaces",
		Light: ThemeTokens{
			Background:            Color{0, 0, 100},
			Foreground:            Color{20, 50, 10},
			Card:                  Color{0, 0, 100},
			CardForeground:        Color{20, 50, 10},
			Popover:               Color{0, 0, 100},
			PopoverForeground:     Color{20, 50, 10},
			Primary:               Color{24, 95, 53},
			PrimaryForeground:     Color{24, 100, 98},
			Secondary:             Color{24, 30, 95},
			SecondaryForeground:   Color{20, 50, 10},
			Muted:                 Color{24, 30, 95},
			MutedForeground:       Color{20, 15, 45},
			Accent:                Color{24, 30, 95},
			AccentForeground:      Color{20, 50, 10},
			Destructive:           Color{0, 84, 60},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 76, 36},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 50},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{24, 25, 88},
			Input:                 Color{24, 25, 88},
			Ring:                  Color{24, 95, 53},
			Radius:                0.5,
		},
		Dark: ThemeTokens{
			Background:            Color{20, 50, 8},
			Foreground:            Color{24, 100, 98},
			Card:                  Color{20, 50, 8},
			CardForeground:        Color{24, 100, 98},
			Popover:               Color{20, 50, 8},
			PopoverForeground:     Color{24, 100, 98},
			Primary:               Color{24, 95, 55},
			PrimaryForeground:     Color{20, 50, 8},
			Secondary:             Color{20, 30, 16},
			SecondaryForeground:   Color{24, 100, 98},
			Muted:                 Color{20, 30, 16},
			MutedForeground:       Color{20, 20, 60},
			Accent:                Color{20, 30, 16},
			AccentForeground:      Color{24, 100, 98},
			Destructive:           Color{0, 62, 30},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 69, 28},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 40},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{20, 30, 16},
			Input:                 Color{20, 30, 16},
			Ring:                  Color{24, 95, 55},
			Radius:                0.5,
		},
	}
}

func rosePreset() Preset {
	return Preset{
		Name:        "rose",
		Label:       "Rose",
		Description: "Friendly rose theme for modern, approachable interfaces",
		Light: ThemeTokens{
			Background:            Color{0, 0, 100},
			Foreground:            Color{346, 40, 11},
			Card:                  Color{0, 0, 100},
			CardForeground:        Color{346, 40, 11},
			Popover:               Color{0, 0, 100},
			PopoverForeground:     Color{346, 40, 11},
			Primary:               Color{346, 77, 50},
			PrimaryForeground:     Color{346, 100, 98},
			Secondary:             Color{346, 30, 96},
			SecondaryForeground:   Color{346, 40, 11},
			Muted:                 Color{346, 30, 96},
			MutedForeground:       Color{346, 15, 45},
			Accent:                Color{346, 30, 96},
			AccentForeground:      Color{346, 40, 11},
			Destructive:           Color{0, 84, 60},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 76, 36},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 50},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{346, 20, 90},
			Input:                 Color{346, 20, 90},
			Ring:                  Color{346, 77, 50},
			Radius:                0.5,
		},
		Dark: ThemeTokens{
			Background:            Color{346, 40, 8},
			Foreground:            Color{346, 100, 98},
			Card:                  Color{346, 40, 8},
			CardForeground:        Color{346, 100, 98},
			Popover:               Color{346, 40, 8},
			PopoverForeground:     Color{346, 100, 98},
			Primary:               Color{346, 77, 55},
			PrimaryForeground:     Color{346, 40, 8},
			Secondary:             Color{346, 30, 16},
			SecondaryForeground:   Color{346, 100, 98},
			Muted:                 Color{346, 30, 16},
			MutedForeground:       Color{346, 20, 60},
			Accent:                Color{346, 30, 16},
			AccentForeground:      Color{346, 100, 98},
			Destructive:           Color{0, 62, 30},
			DestructiveForeground: Color{0, 0, 98},
			Success:               Color{142, 69, 28},
			SuccessForeground:     Color{0, 0, 98},
			Warning:               Color{38, 92, 40},
			WarningForeground:     Color{0, 0, 98},
			Border:                Color{346, 30, 16},
			Input:                 Color{346, 30, 16},
			Ring:                  Color{346, 77, 55},
			Radius:                0.5,
		},
	}
}
