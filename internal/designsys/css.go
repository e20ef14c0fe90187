package designsys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HerbHall/shadetree/internal/css"
	"github.com/HerbHall/shadetree/pkg/palette"
)

// num renders a scale value without a trailing zero fraction.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Variables renders the design system's custom properties: font stacks,
// type scale, spacing, radii, shadows, and motion. Color variables are
// not included; pair with css.Stylesheet for those.
func Variables(s System) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  /* ========================================\n     Theme: %s\n     %s\n     ======================================== */\n\n", s.Label, s.Description)

	t := s.Typography
	b.WriteString("  /* Typography */\n")
	fmt.Fprintf(&b, "  --font-sans: %s;\n", t.FontSans)
	fmt.Fprintf(&b, "  --font-mono: %s;\n", t.FontMono)
	if t.FontDisplay != "" {
		fmt.Fprintf(&b, "  --font-display: %s;\n", t.FontDisplay)
	}

	b.WriteString("\n  /* Font Sizes */\n")
	fmt.Fprintf(&b, "  --text-xs: %s;\n", t.TextXS)
	fmt.Fprintf(&b, "  --text-sm: %s;\n", t.TextSM)
	fmt.Fprintf(&b, "  --text-base: %s;\n", t.TextBase)
	fmt.Fprintf(&b, "  --text-lg: %s;\n", t.TextLG)
	fmt.Fprintf(&b, "  --text-xl: %s;\n", t.TextXL)
	fmt.Fprintf(&b, "  --text-2xl: %s;\n", t.Text2XL)
	fmt.Fprintf(&b, "  --text-3xl: %s;\n", t.Text3XL)
	fmt.Fprintf(&b, "  --text-4xl: %s;\n", t.Text4XL)
	fmt.Fprintf(&b, "  --text-5xl: %s;\n", t.Text5XL)

	b.WriteString("\n  /* Font Weights */\n")
	fmt.Fprintf(&b, "  --font-normal: %d;\n", t.WeightNormal)
	fmt.Fprintf(&b, "  --font-medium: %d;\n", t.WeightMedium)
	fmt.Fprintf(&b, "  --font-semibold: %d;\n", t.WeightSemibold)
	fmt.Fprintf(&b, "  --font-bold: %d;\n", t.WeightBold)

	b.WriteString("\n  /* Line Heights */\n")
	fmt.Fprintf(&b, "  --leading-tight: %s;\n", num(t.LeadingTight))
	fmt.Fprintf(&b, "  --leading-normal: %s;\n", num(t.LeadingNormal))
	fmt.Fprintf(&b, "  --leading-relaxed: %s;\n", num(t.LeadingRelaxed))
	fmt.Fprintf(&b, "  --leading-loose: %s;\n", num(t.LeadingLoose))

	b.WriteString("\n  /* Spacing */\n")
	fmt.Fprintf(&b, "  --space-base: %srem;\n", num(s.Spacing.Base))
	b.WriteString("  --space-0: 0;\n")
	for _, step := range spacingSteps {
		fmt.Fprintf(&b, "  --space-%d: %srem;\n", step, num(s.Spacing.Base*float64(step)))
	}

	b.WriteString("\n  /* Border Radius */\n")
	fmt.Fprintf(&b, "  --radius-sm: %s;\n", s.Radius.SM)
	fmt.Fprintf(&b, "  --radius: %s;\n", s.Radius.Base)
	fmt.Fprintf(&b, "  --radius-md: %s;\n", s.Radius.MD)
	fmt.Fprintf(&b, "  --radius-lg: %s;\n", s.Radius.LG)
	fmt.Fprintf(&b, "  --radius-xl: %s;\n", s.Radius.XL)
	fmt.Fprintf(&b, "  --radius-2xl: %s;\n", s.Radius.XL2)
	fmt.Fprintf(&b, "  --radius-3xl: %s;\n", s.Radius.XL3)
	fmt.Fprintf(&b, "  --radius-full: %s;\n", s.Radius.Full)

	b.WriteString("\n  /* Shadows */\n")
	fmt.Fprintf(&b, "  --shadow-xs: %s;\n", s.Shadows.XS)
	fmt.Fprintf(&b, "  --shadow-sm: %s;\n", s.Shadows.SM)
	fmt.Fprintf(&b, "  --shadow: %s;\n", s.Shadows.Base)
	fmt.Fprintf(&b, "  --shadow-md: %s;\n", s.Shadows.MD)
	fmt.Fprintf(&b, "  --shadow-lg: %s;\n", s.Shadows.LG)
	fmt.Fprintf(&b, "  --shadow-xl: %s;\n", s.Shadows.XL)
	fmt.Fprintf(&b, "  --shadow-2xl: %s;\n", s.Shadows.XL2)
	fmt.Fprintf(&b, "  --shadow-inner: %s;\n", s.Shadows.Inner)

	b.WriteString("\n  /* Animations */\n")
	fmt.Fprintf(&b, "  --duration-fast: %s;\n", s.Motion.DurationFast)
	fmt.Fprintf(&b, "  --duration-normal: %s;\n", s.Motion.DurationNormal)
	fmt.Fprintf(&b, "  --duration-slow: %s;\n", s.Motion.DurationSlow)
	fmt.Fprintf(&b, "  --ease-in: %s;\n", s.Motion.EaseIn)
	fmt.Fprintf(&b, "  --ease-out: %s;\n", s.Motion.EaseOut)
	fmt.Fprintf(&b, "  --ease-in-out: %s;\n", s.Motion.EaseInOut)
	fmt.Fprintf(&b, "  --ease-bounce: %s;\n", s.Motion.EaseBounce)
	b.WriteString("}")

	return b.String()
}

// ThemeCSS renders the complete stylesheet for a design system paired
// with a color preset: color variables for both modes, the system's
// design tokens, typography utilities, and component styles. Note the
// system's --radius overrides the preset's, since its scale is the more
// specific choice.
func ThemeCSS(s System, p palette.Preset, opts css.Options) string {
	colorOpts := opts
	colorOpts.Minify = false

	var b strings.Builder
	b.WriteString("/* shadetree - complete theme CSS */\n\n")
	b.WriteString(css.Stylesheet(p, colorOpts))
	b.WriteString("\n")
	b.WriteString(Variables(s))
	b.WriteString("\n\n")
	b.WriteString(typographyClasses)
	b.WriteString("\n\n")
	writeComponentStyles(&b, s.Components)

	if opts.Minify {
		return css.Minify(b.String())
	}
	return b.String()
}

const typographyClasses = `/* Typography Utilities */
body {
  font-family: var(--font-sans);
  font-size: var(--text-base);
  line-height: var(--leading-normal);
}

.font-sans { font-family: var(--font-sans); }
.font-mono { font-family: var(--font-mono); }
.font-display { font-family: var(--font-display, var(--font-sans)); }

.text-xs { font-size: var(--text-xs); }
.text-sm { font-size: var(--text-sm); }
.text-base { font-size: var(--text-base); }
.text-lg { font-size: var(--text-lg); }
.text-xl { font-size: var(--text-xl); }
.text-2xl { font-size: var(--text-2xl); }
.text-3xl { font-size: var(--text-3xl); }
.text-4xl { font-size: var(--text-4xl); }
.text-5xl { font-size: var(--text-5xl); }

.font-normal { font-weight: var(--font-normal); }
.font-medium { font-weight: var(--font-medium); }
.font-semibold { font-weight: var(--font-semibold); }
.font-bold { font-weight: var(--font-bold); }

.leading-tight { line-height: var(--leading-tight); }
.leading-normal { line-height: var(--leading-normal); }
.leading-relaxed { line-height: var(--leading-relaxed); }`

func writeComponentStyles(b *strings.Builder, c Components) {
	b.WriteString("/* Component Styles */\n")
	switch c.Button {
	case "solid":
		b.WriteString(btnSolid)
	case "outlined":
		b.WriteString(btnOutlined)
	case "ghost":
		b.WriteString(btnGhost)
	}
	switch c.Card {
	case "elevated":
		b.WriteString(cardElevated)
	case "outlined":
		b.WriteString(cardOutlined)
	case "flat":
		b.WriteString(cardFlat)
	}
	switch c.Input {
	case "outlined":
		b.WriteString(inputOutlined)
	case "filled":
		b.WriteString(inputFilled)
	case "underlined":
		b.WriteString(inputUnderlined)
	}
}

const btnSolid = `
.btn {
  border-radius: var(--radius-md);
  box-shadow: var(--shadow-sm);
  transition: all var(--duration-normal) var(--ease-out);
}
.btn:hover {
  box-shadow: var(--shadow);
  transform: translateY(-1px);
}
`

const btnOutlined = `
.btn {
  border-radius: var(--radius);
  border: 2px solid currentColor;
  background: transparent;
  transition: all var(--duration-fast) var(--ease-out);
}
.btn:hover {
  background: currentColor;
  color: var(--background);
}
`

const btnGhost = `
.btn {
  border-radius: var(--radius);
  background: transparent;
  transition: background var(--duration-fast) var(--ease-out);
}
.btn:hover {
  background: hsl(var(--accent) / 0.1);
}
`

const cardElevated = `
.card {
  border-radius: var(--radius-lg);
  box-shadow: var(--shadow);
  transition: box-shadow var(--duration-normal) var(--ease-out);
}
.card:hover {
  box-shadow: var(--shadow-lg);
}
`

const cardOutlined = `
.card {
  border-radius: var(--radius-md);
  border: 1px solid hsl(var(--border));
  box-shadow: none;
}
`

const cardFlat = `
.card {
  border-radius: var(--radius-sm);
  background: hsl(var(--muted) / 0.3);
  box-shadow: none;
}
`

const inputOutlined = `
.form-input {
  border-radius: var(--radius);
  border: 2px solid hsl(var(--input));
  background: transparent;
  transition: border-color var(--duration-fast) var(--ease-out);
}
.form-input:focus {
  border-color: hsl(var(--ring));
  outline: none;
}
`

const inputFilled = `
.form-input {
  border-radius: var(--radius) var(--radius) 0 0;
  border: none;
  border-bottom: 2px solid hsl(var(--input));
  background: hsl(var(--muted) / 0.5);
  transition: all var(--duration-fast) var(--ease-out);
}
.form-input:focus {
  border-bottom-color: hsl(var(--ring));
  background: hsl(var(--muted) / 0.7);
  outline: none;
}
`

const inputUnderlined = `
.form-input {
  border-radius: 0;
  border: none;
  border-bottom: 1px solid hsl(var(--input));
  background: transparent;
  transition: border-color var(--duration-fast) var(--ease-out);
}
.form-input:focus {
  border-bottom-width: 2px;
  border-bottom-color: hsl(var(--ring));
  outline: none;
}
`
