package designsys

// DefaultSystem is the fallback design system name used when a selection
// does not resolve.
const DefaultSystem = "material"

// BuiltinSystems returns the built-in design systems in catalog order.
func BuiltinSystems() []System {
	return []System{
		materialSystem(),
		iosSystem(),
		fluentSystem(),
		minimalistSystem(),
		playfulSystem(),
		corporateSystem(),
		retroSystem(),
		elegantSystem(),
		brutalistSystem(),
		organicSystem(),
		denseSystem(),
	}
}

// The base* helpers carry the shared scale values; each system overrides
// only what distinguishes it.

func baseTypography(sans, mono string) Typography {
	return Typography{
		FontSans:       sans,
		FontMono:       mono,
		TextXS:         "0.75rem",
		TextSM:         "0.875rem",
		TextBase:       "1rem",
		TextLG:         "1.125rem",
		TextXL:         "1.25rem",
		Text2XL:        "1.5rem",
		Text3XL:        "1.875rem",
		Text4XL:        "2.25rem",
		Text5XL:        "3rem",
		WeightNormal:   400,
		WeightMedium:   500,
		WeightSemibold: 600,
		WeightBold:     700,
		LeadingTight:   1.25,
		LeadingNormal:  1.5,
		LeadingRelaxed: 1.75,
		LeadingLoose:   2,
	}
}

func baseRadius(style string) Radius {
	return Radius{
		Style: style,
		SM:    "0.125rem",
		Base:  "0.25rem",
		MD:    "0.375rem",
		LG:    "0.5rem",
		XL:    "0.75rem",
		XL2:   "1rem",
		XL3:   "1.5rem",
		Full:  "9999px",
	}
}

func baseShadows(style string) Shadows {
	return Shadows{
		Style: style,
		XS:    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
		SM:    "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
		Base:  "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
		MD:    "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		LG:    "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
		XL:    "0 25px 50px -12px rgb(0 0 0 / 0.25)",
		XL2:   "0 25px 50px -12px rgb(0 0 0 / 0.25)",
		Inner: "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
	}
}

func baseMotion(style string) Motion {
	return Motion{
		Style:          style,
		DurationFast:   "0.1s",
		DurationNormal: "0.2s",
		DurationSlow:   "0.3s",
		EaseIn:         "cubic-bezier(0.4, 0, 1, 1)",
		EaseOut:        "cubic-bezier(0, 0, 0.2, 1)",
		EaseInOut:      "cubic-bezier(0.4, 0, 0.2, 1)",
		EaseBounce:     "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
	}
}

func materialSystem() System {
	t := baseTypography("Roboto, -apple-system, system-ui, sans-serif", "Roboto Mono, monospace")

	r := baseRadius("rounded")
	r.SM, r.Base, r.MD, r.LG = "0.25rem", "0.25rem", "0.5rem", "0.75rem"

	sh := baseShadows("material")
	sh.SM = "0 2px 4px rgba(0,0,0,0.14), 0 3px 4px rgba(0,0,0,0.12), 0 1px 5px rgba(0,0,0,0.2)"
	sh.Base = "0 4px 8px rgba(0,0,0,0.14), 0 6px 10px rgba(0,0,0,0.12), 0 2px 16px rgba(0,0,0,0.2)"
	sh.LG = "0 12px 17px rgba(0,0,0,0.14), 0 5px 22px rgba(0,0,0,0.12), 0 7px 8px rgba(0,0,0,0.2)"

	m := baseMotion("smooth")
	m.EaseOut = "cubic-bezier(0.0, 0.0, 0.2, 1)"
	m.EaseInOut = "cubic-bezier(0.4, 0.0, 0.2, 1)"

	return System{
		Name:          "material",
		Label:         "Material Design",
		Description:   "Google's Material Design system",
		Category:      "professional",
		Typography:    t,
		Spacing:       Spacing{Scale: "normal", Base: 0.25},
		Radius:        r,
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "solid", Card: "elevated", Input: "filled"},
		DefaultPreset: "default",
	}
}

func iosSystem() System {
	t := baseTypography("-apple-system, BlinkMacSystemFont, 'SF Pro Text', sans-serif", "'SF Mono', Monaco, monospace")
	t.FontDisplay = "'SF Pro Display', sans-serif"
	t.LeadingTight = 1.2
	t.LeadingNormal = 1.4

	r := baseRadius("rounded")
	r.SM, r.Base, r.MD, r.LG, r.XL = "0.5rem", "0.625rem", "0.75rem", "1rem", "1.25rem"

	sh := baseShadows("subtle")
	sh.XS = "0 1px 1px rgba(0,0,0,0.04)"
	sh.SM = "0 2px 4px rgba(0,0,0,0.06)"
	sh.Base = "0 4px 8px rgba(0,0,0,0.08)"
	sh.LG = "0 8px 16px rgba(0,0,0,0.1)"

	m := baseMotion("snappy")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.15s", "0.25s", "0.35s"
	m.EaseInOut = "cubic-bezier(0.42, 0, 0.58, 1)"

	return System{
		Name:          "ios",
		Label:         "iOS",
		Description:   "Apple's iOS design language",
		Category:      "elegant",
		Typography:    t,
		Spacing:       Spacing{Scale: "tight", Base: 0.25},
		Radius:        r,
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "solid", Card: "elevated", Input: "outlined"},
		DefaultPreset: "blue",
	}
}

func fluentSystem() System {
	t := baseTypography("'Segoe UI', -apple-system, system-ui, sans-serif", "'Cascadia Code', Consolas, monospace")

	sh := baseShadows("elevated")
	sh.SM = "0 1.6px 3.6px rgba(0,0,0,0.13), 0 0.3px 0.9px rgba(0,0,0,0.11)"
	sh.Base = "0 3.2px 7.2px rgba(0,0,0,0.13), 0 0.6px 1.8px rgba(0,0,0,0.11)"
	sh.LG = "0 6.4px 14.4px rgba(0,0,0,0.13), 0 1.2px 3.6px rgba(0,0,0,0.11)"

	m := baseMotion("smooth")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.167s", "0.25s", "0.367s"
	m.EaseOut = "cubic-bezier(0.1, 0.9, 0.2, 1)"

	return System{
		Name:          "fluent",
		Label:         "Fluent Design",
		Description:   "Microsoft's Fluent Design System",
		Category:      "professional",
		Typography:    t,
		Spacing:       Spacing{Scale: "normal", Base: 0.25},
		Radius:        baseRadius("rounded"),
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "solid", Card: "elevated", Input: "outlined"},
		DefaultPreset: "blue",
	}
}

func minimalistSystem() System {
	t := baseTypography("'Inter', -apple-system, system-ui, sans-serif", "'JetBrains Mono', monospace")
	t.LeadingTight = 1.2
	t.LeadingNormal = 1.4

	r := baseRadius("sharp")
	r.SM, r.Base, r.MD, r.LG, r.XL = "0", "0", "0", "0.125rem", "0.25rem"

	sh := baseShadows("flat")
	sh.XS = "none"
	sh.SM = "0 1px 0 rgba(0,0,0,0.1)"
	sh.Base = "0 2px 0 rgba(0,0,0,0.1)"
	sh.LG = "0 4px 0 rgba(0,0,0,0.1)"

	m := baseMotion("instant")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.05s", "0.1s", "0.15s"
	m.EaseOut = "linear"
	m.EaseInOut = "linear"

	return System{
		Name:          "minimalist",
		Label:         "Minimalist",
		Description:   "Clean, minimal, brutalist design",
		Category:      "minimal",
		Typography:    t,
		Spacing:       Spacing{Scale: "loose", Base: 0.25},
		Radius:        r,
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "outlined", Card: "outlined", Input: "underlined"},
		DefaultPreset: "default",
	}
}

func playfulSystem() System {
	t := baseTypography("'DM Sans', 'Inter', sans-serif", "'Fira Code', monospace")
	t.FontDisplay = "'DM Sans', sans-serif"

	r := baseRadius("pill")
	r.SM, r.Base, r.MD, r.LG, r.XL = "0.5rem", "1rem", "1.5rem", "2rem", "2.5rem"

	sh := baseShadows("elevated")
	sh.SM = "0 2px 8px rgba(0,0,0,0.08)"
	sh.Base = "0 4px 16px rgba(0,0,0,0.1)"
	sh.LG = "0 8px 32px rgba(0,0,0,0.12)"
	sh.XL = "0 16px 48px rgba(0,0,0,0.15)"

	m := baseMotion("playful")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.2s", "0.3s", "0.5s"
	m.EaseOut = "cubic-bezier(0.34, 1.56, 0.64, 1)"

	return System{
		Name:          "playful",
		Label:         "Playful",
		Description:   "Modern, friendly, with personality",
		Category:      "playful",
		Typography:    t,
		Spacing:       Spacing{Scale: "normal", Base: 0.25},
		Radius:        r,
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "solid", Card: "elevated", Input: "filled"},
		DefaultPreset: "purple",
	}
}

func corporateSystem() System {
	t := baseTypography("'IBM Plex Sans', -apple-system, sans-serif", "'IBM Plex Mono', monospace")
	t.LeadingNormal = 1.6
	t.LeadingRelaxed = 1.8

	sh := baseShadows("subtle")
	sh.SM = "0 1px 3px rgba(0,0,0,0.08)"
	sh.Base = "0 2px 6px rgba(0,0,0,0.1)"
	sh.LG = "0 4px 12px rgba(0,0,0,0.12)"

	m := baseMotion("smooth")
	m.DurationFast = "0.15s"

	return System{
		Name:          "corporate",
		Label:         "Corporate",
		Description:   "Professional, clean, business-focused",
		Category:      "professional",
		Typography:    t,
		Spacing:       Spacing{Scale: "normal", Base: 0.25},
		Radius:        baseRadius("rounded"),
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "solid", Card: "outlined", Input: "outlined"},
		DefaultPreset: "blue",
	}
}

func retroSystem() System {
	t := baseTypography("'MS Sans Serif', 'Geneva', 'Verdana', sans-serif", "'Courier New', 'Courier', monospace")
	t.TextSM = "0.75rem"
	t.TextBase = "0.875rem"
	t.TextLG = "1rem"
	t.TextXL = "1.25rem"
	t.Text2XL = "1.5rem"
	t.LeadingTight = 1.2
	t.LeadingNormal = 1.4
	t.LeadingRelaxed = 1.6

	r := baseRadius("sharp")
	r.SM, r.Base, r.MD, r.LG = "0px", "0px", "0px", "0px"

	sh := baseShadows("basic")
	sh.SM = "2px 2px 0 rgba(0,0,0,0.3)"
	sh.Base = "3px 3px 0 rgba(0,0,0,0.4)"
	sh.LG = "4px 4px 0 rgba(0,0,0,0.5)"

	m := baseMotion("instant")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.05s", "0.1s", "0.15s"
	m.EaseInOut = "linear"

	return System{
		Name:          "retro",
		Label:         "Retro",
		Description:   "Classic web 1.0 with system fonts and sharp edges",
		Category:      "retro",
		Typography:    t,
		Spacing:       Spacing{Scale: "normal", Base: 0.5},
		Radius:        r,
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "solid", Card: "outlined", Input: "outlined"},
		DefaultPreset: "default",
	}
}

func elegantSystem() System {
	t := baseTypography("'Crimson Pro', 'Cormorant', 'Playfair Display', serif", "'IBM Plex Mono', 'Courier New', monospace")
	t.TextSM = "0.9375rem"
	t.TextBase = "1.0625rem"
	t.TextLG = "1.1875rem"
	t.TextXL = "1.5rem"
	t.Text2XL = "2rem"
	t.LeadingTight = 1.4
	t.LeadingNormal = 1.7
	t.LeadingRelaxed = 1.9

	sh := baseShadows("elegant")
	sh.SM = "0 1px 3px rgba(0,0,0,0.04)"
	sh.Base = "0 4px 12px rgba(0,0,0,0.06)"
	sh.LG = "0 12px 28px rgba(0,0,0,0.08)"

	m := baseMotion("refined")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.25s", "0.4s", "0.6s"
	m.EaseInOut = "cubic-bezier(0.25, 0.46, 0.45, 0.94)"

	return System{
		Name:          "elegant",
		Label:         "Elegant",
		Description:   "Premium design with serif fonts and generous spacing",
		Category:      "elegant",
		Typography:    t,
		Spacing:       Spacing{Scale: "generous", Base: 0.75},
		Radius:        baseRadius("subtle"),
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "ghost", Card: "flat", Input: "underlined"},
		DefaultPreset: "default",
	}
}

func brutalistSystem() System {
	t := baseTypography("'Space Grotesk', 'Archivo Black', 'Bebas Neue', sans-serif", "'Space Mono', 'Courier', monospace")
	t.TextSM = "1rem"
	t.TextBase = "1.125rem"
	t.TextLG = "1.375rem"
	t.TextXL = "2rem"
	t.Text2XL = "3rem"
	t.WeightNormal = 500
	t.WeightMedium = 700
	t.WeightBold = 900
	t.LeadingTight = 1.1
	t.LeadingNormal = 1.3
	t.LeadingRelaxed = 1.5

	r := baseRadius("sharp")
	r.SM, r.Base, r.MD, r.LG = "0px", "0px", "0px", "0px"

	sh := baseShadows("dramatic")
	sh.SM = "4px 4px 0 rgba(0,0,0,1)"
	sh.Base = "8px 8px 0 rgba(0,0,0,1)"
	sh.LG = "12px 12px 0 rgba(0,0,0,1)"

	m := baseMotion("snappy")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.08s", "0.12s", "0.18s"
	m.EaseInOut = "cubic-bezier(0.68, -0.55, 0.265, 1.55)"

	return System{
		Name:          "brutalist",
		Label:         "Neo-Brutalist",
		Description:   "Bold, dramatic design with thick borders and high contrast",
		Category:      "bold",
		Typography:    t,
		Spacing:       Spacing{Scale: "normal", Base: 0.5},
		Radius:        r,
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "solid", Card: "outlined", Input: "outlined"},
		DefaultPreset: "default",
	}
}

func organicSystem() System {
	t := baseTypography("'Nunito', 'Quicksand', 'Comfortaa', sans-serif", "'Inconsolata', monospace")
	t.TextXL = "1.5rem"
	t.Text2XL = "2rem"
	t.WeightMedium = 600
	t.LeadingTight = 1.4
	t.LeadingNormal = 1.6
	t.LeadingRelaxed = 1.8

	r := baseRadius("pill")
	r.SM, r.Base, r.MD, r.LG = "1rem", "1.5rem", "2rem", "3rem"

	sh := baseShadows("soft")
	sh.SM = "0 2px 8px rgba(0,0,0,0.08)"
	sh.Base = "0 4px 16px rgba(0,0,0,0.1)"
	sh.LG = "0 8px 32px rgba(0,0,0,0.12)"

	m := baseMotion("gentle")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.3s", "0.5s", "0.8s"
	m.EaseInOut = "cubic-bezier(0.34, 1.56, 0.64, 1)"

	return System{
		Name:          "organic",
		Label:         "Organic",
		Description:   "Soft, nature-inspired design with gentle curves",
		Category:      "playful",
		Typography:    t,
		Spacing:       Spacing{Scale: "comfortable", Base: 0.625},
		Radius:        r,
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "solid", Card: "elevated", Input: "filled"},
		DefaultPreset: "green",
	}
}

func denseSystem() System {
	t := baseTypography("'Roboto Condensed', 'Arial Narrow', sans-serif", "'Monaco', 'Consolas', monospace")
	t.TextSM = "0.6875rem"
	t.TextBase = "0.8125rem"
	t.TextLG = "0.9375rem"
	t.TextXL = "1.125rem"
	t.Text2XL = "1.375rem"
	t.LeadingTight = 1.2
	t.LeadingNormal = 1.35
	t.LeadingRelaxed = 1.5

	r := baseRadius("minimal")
	r.SM, r.Base, r.MD, r.LG = "0.125rem", "0.125rem", "0.25rem", "0.25rem"

	sh := baseShadows("minimal")
	sh.SM = "0 1px 2px rgba(0,0,0,0.06)"
	sh.Base = "0 1px 3px rgba(0,0,0,0.08)"
	sh.LG = "0 2px 6px rgba(0,0,0,0.1)"

	m := baseMotion("immediate")
	m.DurationFast, m.DurationNormal, m.DurationSlow = "0.05s", "0.1s", "0.15s"
	m.EaseInOut = "ease-out"

	return System{
		Name:          "dense",
		Label:         "Dense",
		Description:   "Compact design for maximum information density",
		Category:      "minimal",
		Typography:    t,
		Spacing:       Spacing{Scale: "tight", Base: 0.25},
		Radius:        r,
		Shadows:       sh,
		Motion:        m,
		Components:    Components{Button: "ghost", Card: "flat", Input: "outlined"},
		DefaultPreset: "default",
	}
}
