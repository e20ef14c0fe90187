package designsys

import (
	"fmt"
	"strings"

	"github.com/HerbHall/shadetree/internal/css"
	"github.com/HerbHall/shadetree/pkg/palette"
)

// PackCSS renders the full stylesheet for a theme pack: the combined
// theme CSS for its design system and color preset, followed by the
// pack's icon, effect, pattern, interaction, and illustration styling.
// The caller resolves sys and p from the pack's System and Preset names.
func PackCSS(pack Pack, sys System, p palette.Preset, opts css.Options) string {
	colorOpts := opts
	colorOpts.Minify = false

	var b strings.Builder
	fmt.Fprintf(&b, "/* shadetree - theme pack: %s */\n", pack.Label)
	fmt.Fprintf(&b, "/* %s */\n\n", pack.Description)

	b.WriteString("/* Base Theme CSS */\n")
	b.WriteString(ThemeCSS(sys, p, colorOpts))

	b.WriteString("\n/* Icon Styles */\n")
	writeIconCSS(&b, pack.Icons)

	b.WriteString("\n/* Animation Styles */\n")
	writeEffectCSS(&b, pack.Effects)

	b.WriteString("\n/* Pattern Styles */\n")
	writePatternCSS(&b, pack.Pattern)

	b.WriteString("\n/* Interaction Styles */\n")
	writeInteractionCSS(&b, pack.Interaction)

	b.WriteString("\n/* Illustration Styles */\n")
	writeIllustrationCSS(&b, pack.Illustration)

	if opts.Minify {
		return css.Minify(b.String())
	}
	return b.String()
}

func writeIconCSS(b *strings.Builder, icon IconStyle) {
	fmt.Fprintf(b, ":root {\n  --icon-stroke-width: %s;\n  --icon-corner-rounding: %s;\n  --icon-size-scale: %s;\n}\n\n",
		icon.StrokeWidth, icon.CornerRounding, num(icon.SizeScale))

	// The !important overrides beat inline fill/stroke attributes on
	// embedded SVGs.
	switch icon.Style {
	case "filled":
		b.WriteString(`svg {
  fill: currentColor !important;
  stroke: none !important;
}
svg path, svg circle, svg rect, svg polygon, svg line {
  fill: currentColor !important;
  stroke: none !important;
}
`)
	case "outlined":
		fmt.Fprintf(b, `svg {
  fill: none !important;
  stroke: currentColor !important;
  stroke-width: %s !important;
  stroke-linecap: round !important;
  stroke-linejoin: round !important;
}
svg path, svg circle, svg rect, svg polygon, svg line {
  fill: none !important;
  stroke: currentColor !important;
}
`, icon.StrokeWidth)
	case "rounded":
		fmt.Fprintf(b, `svg {
  fill: currentColor !important;
  stroke: none !important;
  stroke-width: %s !important;
  stroke-linecap: round !important;
  stroke-linejoin: round !important;
}
svg path, svg circle, svg rect, svg polygon, svg line {
  fill: currentColor !important;
  stroke: none !important;
}
svg rect {
  rx: 2 !important;
}
`, icon.StrokeWidth)
	case "sharp":
		fmt.Fprintf(b, `svg {
  fill: currentColor !important;
  stroke: currentColor !important;
  stroke-width: %s !important;
  stroke-linecap: square !important;
  stroke-linejoin: miter !important;
}
svg path, svg circle, svg rect, svg polygon, svg line {
  fill: currentColor !important;
  stroke: currentColor !important;
  stroke-width: %s !important;
}
`, icon.StrokeWidth, icon.StrokeWidth)
	}
}

func writeEffectCSS(b *strings.Builder, e EffectStyle) {
	fmt.Fprintf(b, ":root {\n  --anim-duration-fast: %s;\n  --anim-duration-normal: %s;\n  --anim-duration-slow: %s;\n  --anim-easing: %s;\n}\n\n",
		e.DurationFast, e.DurationNormal, e.DurationSlow, e.Easing)
	b.WriteString("* {\n  transition-duration: var(--anim-duration-fast);\n  transition-timing-function: var(--anim-easing);\n}\n")

	switch e.Hover {
	case "lift":
		fmt.Fprintf(b, "\n.btn:hover, .card:hover {\n  transform: translateY(%s);\n  box-shadow: 0 8px 16px rgba(0,0,0,0.1);\n}\n", e.HoverLift)
	case "scale":
		fmt.Fprintf(b, "\n.btn:hover, .card:hover {\n  transform: scale(%s);\n}\n", num(e.HoverScale))
	case "glow":
		b.WriteString("\n.btn:hover, .card:hover {\n  box-shadow: 0 0 20px hsla(var(--primary), 0.5);\n}\n")
	}

	switch e.Click {
	case "ripple":
		b.WriteString(`
.btn:active {
  position: relative;
  overflow: hidden;
}

.btn:active::after {
  content: '';
  position: absolute;
  inset: 0;
  background: radial-gradient(circle, hsla(var(--primary-foreground), 0.3) 0%, transparent 70%);
  animation: ripple 0.6s ease-out;
}

@keyframes ripple {
  to {
    transform: scale(2);
    opacity: 0;
  }
}
`)
	case "pulse":
		b.WriteString(`
.btn:active {
  animation: pulse 0.3s ease-out;
}

@keyframes pulse {
  0%, 100% { transform: scale(1); }
  50% { transform: scale(0.95); }
}
`)
	case "bounce":
		b.WriteString(`
.btn:active {
  animation: bounce 0.4s ease-out;
}

@keyframes bounce {
  0%, 100% { transform: scale(1); }
  50% { transform: scale(0.9); }
  75% { transform: scale(1.05); }
}
`)
	}

	switch e.Entrance {
	case "fade":
		fmt.Fprintf(b, "\n@keyframes entrance-fade {\n  from { opacity: 0; }\n  to { opacity: 1; }\n}\n\n.animate-in {\n  animation: entrance-fade %s %s;\n}\n", e.DurationFast, e.Easing)
	case "slide":
		fmt.Fprintf(b, "\n@keyframes entrance-slide {\n  from {\n    opacity: 0;\n    transform: translateY(20px);\n  }\n  to {\n    opacity: 1;\n    transform: translateY(0);\n  }\n}\n\n.animate-in {\n  animation: entrance-slide %s %s;\n}\n", e.DurationNormal, e.Easing)
	case "scale", "bounce":
		fmt.Fprintf(b, "\n@keyframes entrance-scale {\n  from {\n    opacity: 0;\n    transform: scale(0.9);\n  }\n  to {\n    opacity: 1;\n    transform: scale(1);\n  }\n}\n\n.animate-in {\n  animation: entrance-scale %s %s;\n}\n", e.DurationFast, e.Easing)
	}

	fmt.Fprintf(b, `
.loading-spinner {
  display: inline-block;
  width: 1rem;
  height: 1rem;
  border: 2px solid hsla(var(--primary), 0.3);
  border-top-color: hsl(var(--primary));
  border-radius: 50%%;
  animation: spin %s linear infinite;
}

@keyframes spin {
  to { transform: rotate(360deg); }
}
`, e.DurationNormal)
}

func writePatternCSS(b *strings.Builder, pt PatternStyle) {
	switch pt.Background {
	case "dots":
		b.WriteString("body::before {\n  content: '';\n  position: fixed;\n  inset: 0;\n  background-image: radial-gradient(circle, hsl(var(--foreground)) 1px, transparent 1px);\n")
		fmt.Fprintf(b, "  background-size: %s %s;\n  opacity: %s;\n", pt.Scale, pt.Scale, num(pt.Opacity))
		b.WriteString("  pointer-events: none;\n  z-index: -1;\n}\n")
	case "grid":
		b.WriteString("body::before {\n  content: '';\n  position: fixed;\n  inset: 0;\n")
		fmt.Fprintf(b, "  background-image:\n    linear-gradient(hsla(var(--foreground), %s) 1px, transparent 1px),\n    linear-gradient(90deg, hsla(var(--foreground), %s) 1px, transparent 1px);\n", num(pt.Opacity), num(pt.Opacity))
		fmt.Fprintf(b, "  background-size: %s %s;\n", pt.Scale, pt.Scale)
		b.WriteString("  pointer-events: none;\n  z-index: -1;\n}\n")
	case "noise":
		b.WriteString("body::before {\n  content: '';\n  position: fixed;\n  inset: 0;\n  background-image: url(\"data:image/svg+xml,%3Csvg viewBox='0 0 200 200' xmlns='http://www.w3.org/2000/svg'%3E%3Cfilter id='noise'%3E%3CfeTurbulence type='fractalNoise' baseFrequency='0.9' numOctaves='4' stitchTiles='stitch'/%3E%3C/filter%3E%3Crect width='100%25' height='100%25' filter='url(%23noise)'/%3E%3C/svg%3E\");\n")
		fmt.Fprintf(b, "  opacity: %s;\n", num(pt.Opacity))
		b.WriteString("  pointer-events: none;\n  z-index: -1;\n}\n")
	case "gradient":
		b.WriteString("body::before {\n  content: '';\n  position: fixed;\n  inset: 0;\n")
		fmt.Fprintf(b, "  background: linear-gradient(135deg,\n    hsla(var(--primary), %s) 0%%,\n    hsla(var(--secondary), %s) 100%%);\n", num(pt.Opacity), num(pt.Opacity))
		b.WriteString("  pointer-events: none;\n  z-index: -1;\n}\n")
	}

	switch pt.Surface {
	case "glass":
		fmt.Fprintf(b, "\n.card, .modal, .dropdown {\n  background: hsla(var(--card), 0.8);\n  backdrop-filter: blur(%s);\n  -webkit-backdrop-filter: blur(%s);\n}\n", pt.BackdropBlur, pt.BackdropBlur)
	case "neumorphic":
		b.WriteString(`
.card {
  background: hsl(var(--background));
  box-shadow:
    8px 8px 16px hsla(var(--foreground), 0.1),
    -8px -8px 16px hsla(var(--background), 1);
}
`)
	}
}

func writeInteractionCSS(b *strings.Builder, ix InteractionStyle) {
	if decl := hoverDecl(ix.ButtonHover, "0 4px 8px rgba(0,0,0,0.1)", "-2px", "1.05"); decl != "" {
		fmt.Fprintf(b, ".btn:hover {\n  %s\n}\n\n", decl)
	}
	switch ix.LinkHover {
	case "underline":
		b.WriteString("a:hover {\n  text-decoration: underline;\n}\n\n")
	case "color":
		b.WriteString("a:hover {\n  color: hsl(var(--primary));\n}\n\n")
	case "background":
		b.WriteString("a:hover {\n  background-color: hsla(var(--primary), 0.1);\n}\n\n")
	}
	switch ix.CardHover {
	case "lift":
		b.WriteString(".card:hover {\n  transform: translateY(-4px);\n  box-shadow: 0 8px 16px rgba(0,0,0,0.1);\n}\n")
	case "scale":
		b.WriteString(".card:hover {\n  transform: scale(1.02);\n}\n")
	case "border":
		b.WriteString(".card:hover {\n  border-color: hsl(var(--primary));\n}\n")
	case "shadow":
		b.WriteString(".card:hover {\n  box-shadow: 0 4px 12px rgba(0,0,0,0.1);\n}\n")
	}

	switch ix.Focus {
	case "ring":
		fmt.Fprintf(b, "\n*:focus-visible {\n  outline: none;\n  box-shadow: 0 0 0 %s hsl(var(--background)),\n              0 0 0 calc(%s + %s) hsl(var(--ring));\n}\n", ix.RingOffset, ix.RingOffset, ix.RingWidth)
	case "outline":
		fmt.Fprintf(b, "\n*:focus-visible {\n  outline: %s solid hsl(var(--ring));\n  outline-offset: %s;\n}\n", ix.RingWidth, ix.RingOffset)
	case "glow":
		b.WriteString("\n*:focus-visible {\n  outline: none;\n  box-shadow: 0 0 0 3px hsla(var(--ring), 0.3);\n}\n")
	case "underline":
		b.WriteString("\n*:focus-visible {\n  outline: none;\n  text-decoration: underline;\n  text-decoration-color: hsl(var(--ring));\n  text-decoration-thickness: 2px;\n  text-underline-offset: 4px;\n}\n")
	}

	fmt.Fprintf(b, "\nbutton, a, .clickable {\n  cursor: %s;\n}\n", ix.Cursor)
}

// hoverDecl maps a hover effect name to its declaration list.
func hoverDecl(effect, shadow, lift, scale string) string {
	switch effect {
	case "lift":
		return fmt.Sprintf("transform: translateY(%s); box-shadow: %s;", lift, shadow)
	case "scale":
		return fmt.Sprintf("transform: scale(%s);", scale)
	case "glow":
		return "box-shadow: 0 0 16px hsla(var(--primary), 0.5);"
	case "darken":
		return "filter: brightness(0.9);"
	}
	return ""
}

func writeIllustrationCSS(b *strings.Builder, il IllustrationStyle) {
	b.WriteString("img, .illustration {\n")
	fmt.Fprintf(b, "  border-radius: %s;\n", il.BorderRadius)
	switch il.Filter {
	case "grayscale":
		b.WriteString("  filter: grayscale(100%);\n")
	case "sepia":
		b.WriteString("  filter: sepia(60%);\n")
	case "vibrant":
		b.WriteString("  filter: saturate(1.3) contrast(1.1);\n")
	case "duotone":
		b.WriteString("  filter: grayscale(100%) contrast(1.2) brightness(0.9);\n")
	}
	b.WriteString("}\n")

	fmt.Fprintf(b, "\n.aspect-preferred {\n  aspect-ratio: %s;\n}\n", strings.ReplaceAll(il.Aspect, ":", " / "))
}
