// Package designsys defines the non-color half of a theme: typography,
// spacing, radii, shadows, and motion, bundled into named design systems.
// Pairing a System with a palette.Preset yields a complete stylesheet; a
// Pack pins such a pairing together with accent styling (icons, effects,
// background patterns, interaction feedback).
package designsys

// Typography holds the font stacks and type scale for a design system.
// Sizes are CSS lengths, weights are CSS font-weight numbers, leadings
// are unitless line-heights.
type Typography struct {
	FontSans    string
	FontMono    string
	FontDisplay string // optional; omitted from CSS when empty

	TextXS   string
	TextSM   string
	TextBase string
	TextLG   string
	TextXL   string
	Text2XL  string
	Text3XL  string
	Text4XL  string
	Text5XL  string

	WeightNormal   int
	WeightMedium   int
	WeightSemibold int
	WeightBold     int

	LeadingTight   float64
	LeadingNormal  float64
	LeadingRelaxed float64
	LeadingLoose   float64
}

// Spacing defines the spacing scale. Emitted steps are fixed multiples
// of Base (see spacingSteps); Scale is a descriptive label such as
// "tight" or "loose".
type Spacing struct {
	Scale string
	Base  float64 // rem
}

// spacingSteps are the multipliers of Spacing.Base emitted as --space-N.
var spacingSteps = [...]int{1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24}

// Radius defines the border-radius scale. Values are CSS lengths.
type Radius struct {
	Style string // sharp, rounded, pill

	SM   string
	Base string
	MD   string
	LG   string
	XL   string
	XL2  string
	XL3  string
	Full string
}

// Shadows defines the elevation scale. Values are CSS box-shadow lists.
type Shadows struct {
	Style string // flat, subtle, material, elevated

	XS    string
	SM    string
	Base  string
	MD    string
	LG    string
	XL    string
	XL2   string
	Inner string
}

// Motion defines transition durations and easing curves.
type Motion struct {
	Style string // instant, snappy, smooth, playful

	DurationFast   string
	DurationNormal string
	DurationSlow   string

	EaseIn     string
	EaseOut    string
	EaseInOut  string
	EaseBounce string
}

// Components selects the rendering treatment for the stock component
// classes emitted by ThemeCSS.
type Components struct {
	Button string // solid, outlined, ghost
	Card   string // elevated, outlined, flat
	Input  string // outlined, filled, underlined
}

// System is a complete color-independent design system. DefaultPreset
// names the palette preset paired with the system when the caller does
// not choose one explicitly.
type System struct {
	Name        string
	Label       string
	Description string
	Category    string

	Typography Typography
	Spacing    Spacing
	Radius     Radius
	Shadows    Shadows
	Motion     Motion
	Components Components

	DefaultPreset string
}
