package designsys

// IconStyle controls how inline SVG icons render.
type IconStyle struct {
	Style          string // outlined, filled, rounded, sharp
	Weight         string // thin, regular, bold
	SizeScale      float64
	StrokeWidth    string
	CornerRounding string
}

// EffectStyle controls entrance, hover, and click effects plus the
// transition timing shared by all of them.
type EffectStyle struct {
	Entrance   string // fade, slide, scale, bounce, none
	Exit       string
	Hover      string // lift, scale, glow, none
	HoverScale float64
	HoverLift  string // translateY distance for the lift effect
	Click      string // ripple, pulse, bounce, none
	Loading    string // spinner, skeleton, progress, pulse

	DurationFast   string
	DurationNormal string
	DurationSlow   string
	Easing         string
}

// PatternStyle controls the page background pattern and surface
// treatment.
type PatternStyle struct {
	Background   string // dots, grid, noise, gradient, none
	Opacity      float64
	Scale        string
	Surface      string // flat, glass, neumorphic
	BackdropBlur string
}

// InteractionStyle controls hover and focus feedback.
type InteractionStyle struct {
	ButtonHover string // lift, scale, glow, darken, none
	LinkHover   string // underline, color, background, none
	CardHover   string // lift, scale, border, shadow, none
	Focus       string // ring, outline, glow, underline
	RingWidth   string
	RingOffset  string
	Cursor      string
}

// IllustrationStyle controls image treatment.
type IllustrationStyle struct {
	Type         string // flat, 3d, line-art, hand-drawn
	BorderRadius string
	Filter       string // none, grayscale, sepia, vibrant, duotone
	Aspect       string // preferred ratio, e.g. "16:9"
}

// Pack bundles a design system and color preset with accent styling
// into one opinionated look. System and Preset are names resolved
// through the Catalog and the palette registry at render time.
type Pack struct {
	Name        string
	Label       string
	Description string
	Category    string // professional, playful, minimal, bold, elegant, retro

	System string
	Preset string

	Icons        IconStyle
	Effects      EffectStyle
	Pattern      PatternStyle
	Interaction  InteractionStyle
	Illustration IllustrationStyle
}

// Shared accent styles. Packs reference these by value, so the vars stay
// untouched after init.

var (
	iconOutlined = IconStyle{Style: "outlined", Weight: "regular", SizeScale: 1, StrokeWidth: "2", CornerRounding: "0"}
	iconRounded  = IconStyle{Style: "rounded", Weight: "regular", SizeScale: 1, StrokeWidth: "2", CornerRounding: "4px"}
	iconSharp    = IconStyle{Style: "sharp", Weight: "bold", SizeScale: 1, StrokeWidth: "2.5", CornerRounding: "0"}
	iconThin     = IconStyle{Style: "outlined", Weight: "thin", SizeScale: 1, StrokeWidth: "1", CornerRounding: "0"}
)

var (
	animSmooth = EffectStyle{
		Entrance: "fade", Exit: "fade",
		Hover: "lift", HoverScale: 1.02, HoverLift: "-2px",
		Click: "ripple", Loading: "spinner",
		DurationFast: "0.15s", DurationNormal: "0.3s", DurationSlow: "0.5s",
		Easing: "cubic-bezier(0.4, 0, 0.2, 1)",
	}
	animSnappy = EffectStyle{
		Entrance: "scale", Exit: "scale",
		Hover: "scale", HoverScale: 1.05, HoverLift: "0px",
		Click: "pulse", Loading: "progress",
		DurationFast: "0.08s", DurationNormal: "0.12s", DurationSlow: "0.2s",
		Easing: "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
	}
	animBouncy = EffectStyle{
		Entrance: "bounce", Exit: "scale",
		Hover: "scale", HoverScale: 1.1, HoverLift: "0px",
		Click: "bounce", Loading: "pulse",
		DurationFast: "0.2s", DurationNormal: "0.4s", DurationSlow: "0.6s",
		Easing: "cubic-bezier(0.34, 1.56, 0.64, 1)",
	}
	animInstant = EffectStyle{
		Entrance: "none", Exit: "none",
		Hover: "none", HoverScale: 1, HoverLift: "0px",
		Click: "none", Loading: "spinner",
		DurationFast: "0.05s", DurationNormal: "0.1s", DurationSlow: "0.15s",
		Easing: "linear",
	}
	animGentle = EffectStyle{
		Entrance: "fade", Exit: "fade",
		Hover: "glow", HoverScale: 1, HoverLift: "0px",
		Click: "none", Loading: "skeleton",
		DurationFast: "0.3s", DurationNormal: "0.5s", DurationSlow: "0.8s",
		Easing: "cubic-bezier(0.25, 0.46, 0.45, 0.94)",
	}
)

var (
	patternMinimal  = PatternStyle{Background: "none", Opacity: 0, Scale: "1rem", Surface: "flat", BackdropBlur: "0px"}
	patternDots     = PatternStyle{Background: "dots", Opacity: 0.05, Scale: "1.5rem", Surface: "flat", BackdropBlur: "0px"}
	patternGrid     = PatternStyle{Background: "grid", Opacity: 0.03, Scale: "2rem", Surface: "flat", BackdropBlur: "0px"}
	patternNoise    = PatternStyle{Background: "noise", Opacity: 0.02, Scale: "1rem", Surface: "flat", BackdropBlur: "0px"}
	patternGlass    = PatternStyle{Background: "none", Opacity: 0, Scale: "1rem", Surface: "glass", BackdropBlur: "12px"}
	patternGradient = PatternStyle{Background: "gradient", Opacity: 0.1, Scale: "100%", Surface: "flat", BackdropBlur: "0px"}
)

var (
	interactSubtle  = InteractionStyle{ButtonHover: "lift", LinkHover: "underline", CardHover: "shadow", Focus: "ring", RingWidth: "2px", RingOffset: "2px", Cursor: "pointer"}
	interactBold    = InteractionStyle{ButtonHover: "scale", LinkHover: "background", CardHover: "lift", Focus: "outline", RingWidth: "3px", RingOffset: "0px", Cursor: "pointer"}
	interactMinimal = InteractionStyle{ButtonHover: "darken", LinkHover: "color", CardHover: "border", Focus: "underline", RingWidth: "1px", RingOffset: "0px", Cursor: "default"}
	interactPlayful = InteractionStyle{ButtonHover: "glow", LinkHover: "background", CardHover: "lift", Focus: "glow", RingWidth: "3px", RingOffset: "3px", Cursor: "pointer"}
)

var (
	illustFlat      = IllustrationStyle{Type: "flat", BorderRadius: "0.5rem", Filter: "none", Aspect: "16:9"}
	illust3D        = IllustrationStyle{Type: "3d", BorderRadius: "1rem", Filter: "vibrant", Aspect: "1:1"}
	illustLine      = IllustrationStyle{Type: "line-art", BorderRadius: "0.25rem", Filter: "none", Aspect: "4:3"}
	illustHandDrawn = IllustrationStyle{Type: "hand-drawn", BorderRadius: "1.5rem", Filter: "none", Aspect: "16:9"}
	illustRetro     = IllustrationStyle{Type: "flat", BorderRadius: "0px", Filter: "none", Aspect: "4:3"}
)

// BuiltinPacks returns the built-in theme packs in catalog order.
func BuiltinPacks() []Pack {
	return []Pack{
		{
			Name:         "corporate",
			Label:        "Corporate Professional",
			Description:  "Clean, professional design for business applications",
			Category:     "professional",
			System:       "corporate",
			Preset:       "blue",
			Icons:        iconOutlined,
			Effects:      animSmooth,
			Pattern:      patternGrid,
			Interaction:  interactSubtle,
			Illustration: illustLine,
		},
		{
			Name:         "playful",
			Label:        "Playful Startup",
			Description:  "Fun, energetic design with personality",
			Category:     "playful",
			System:       "playful",
			Preset:       "purple",
			Icons:        iconRounded,
			Effects:      animBouncy,
			Pattern:      patternDots,
			Interaction:  interactPlayful,
			Illustration: illust3D,
		},
		{
			Name:         "minimal",
			Label:        "Minimal Clean",
			Description:  "Distraction-free design with maximum content focus",
			Category:     "minimal",
			System:       "minimalist",
			Preset:       "default",
			Icons:        iconThin,
			Effects:      animInstant,
			Pattern:      patternMinimal,
			Interaction:  interactMinimal,
			Illustration: illustLine,
		},
		{
			Name:         "elegant",
			Label:        "Elegant Luxury",
			Description:  "Sophisticated, premium design with refined details",
			Category:     "elegant",
			System:       "elegant",
			Preset:       "default",
			Icons:        iconThin,
			Effects:      animGentle,
			Pattern:      patternGradient,
			Interaction:  interactSubtle,
			Illustration: illustHandDrawn,
		},
		{
			Name:         "retro",
			Label:        "Retro Nostalgia",
			Description:  "Classic 90s web aesthetic with pixel-perfect design",
			Category:     "retro",
			System:       "retro",
			Preset:       "default",
			Icons:        iconSharp,
			Effects:      animInstant,
			Pattern:      patternNoise,
			Interaction:  interactMinimal,
			Illustration: illustRetro,
		},
		{
			Name:         "brutalist",
			Label:        "Neo-Brutalist Edge",
			Description:  "Bold, dramatic design with high contrast",
			Category:     "bold",
			System:       "brutalist",
			Preset:       "default",
			Icons:        iconSharp,
			Effects:      animSnappy,
			Pattern:      patternMinimal,
			Interaction:  interactBold,
			Illustration: illustFlat,
		},
		{
			Name:         "nature",
			Label:        "Nature Organic",
			Description:  "Soft, natural design inspired by organic forms",
			Category:     "playful",
			System:       "organic",
			Preset:       "green",
			Icons:        iconRounded,
			Effects:      animGentle,
			Pattern:      patternDots,
			Interaction:  interactSubtle,
			Illustration: illustHandDrawn,
		},
		{
			Name:         "midnight",
			Label:        "Midnight Shift",
			Description:  "Glassy, dark-friendly look for late-night dashboards",
			Category:     "professional",
			System:       "fluent",
			Preset:       "blue",
			Icons:        iconOutlined,
			Effects:      animSmooth,
			Pattern:      patternGlass,
			Interaction:  interactSubtle,
			Illustration: illustFlat,
		},
	}
}
