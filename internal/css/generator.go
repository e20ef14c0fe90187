// Package css renders theme presets into CSS custom property stylesheets.
//
// A stylesheet has three variable blocks (:root for light, an explicit dark
// selector, and a prefers-color-scheme media query for system mode) followed
// by optional base element styles and utility classes. Declaration order is
// stable so generated output can be diffed and cached byte-for-byte.
package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HerbHall/shadetree/pkg/palette"
)

// Options controls which sections Stylesheet emits.
type Options struct {
	// BaseStyles includes body/element defaults wired to the variables.
	BaseStyles bool
	// Utilities includes the .bg-*/.text-*/.btn-* helper classes.
	Utilities bool
	// Minify strips comments and collapses whitespace in the final output.
	Minify bool
}

// DefaultOptions returns the full stylesheet configuration.
func DefaultOptions() Options {
	return Options{BaseStyles: true, Utilities: true}
}

// Stylesheet renders the complete CSS for a preset.
func Stylesheet(p palette.Preset, opts Options) string {
	var b strings.Builder
	b.WriteString("/* shadetree - generated theme CSS */\n\n")
	writeVariableBlocks(&b, p)

	if opts.BaseStyles {
		b.WriteString("\n")
		b.WriteString(baseStyles)
	}
	if opts.Utilities {
		b.WriteString("\n")
		b.WriteString(utilities)
	}

	out := b.String()
	if opts.Minify {
		out = Minify(out)
	}
	return out
}

// Variables renders only the custom property blocks, no base styles or
// utilities. Useful when embedding theme variables into an existing sheet.
func Variables(p palette.Preset) string {
	var b strings.Builder
	writeVariableBlocks(&b, p)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeVariableBlocks(b *strings.Builder, p palette.Preset) {
	b.WriteString(":root {\n")
	writeTokens(b, p.Light, "  ")
	b.WriteString("}\n\n")

	b.WriteString(".dark,\n[data-theme=\"dark\"] {\n")
	writeTokens(b, p.Dark, "  ")
	b.WriteString("}\n\n")

	b.WriteString("@media (prefers-color-scheme: dark) {\n")
	b.WriteString("  :root:not([data-theme=\"light\"]) {\n")
	writeTokens(b, p.Dark, "    ")
	b.WriteString("  }\n")
	b.WriteString("}\n")
}

// writeTokens emits one declaration per token: base colors first, then the
// shadcn/ui sidebar and chart aliases, then the radius.
func writeTokens(b *strings.Builder, t palette.ThemeTokens, indent string) {
	for _, pair := range t.Pairs() {
		fmt.Fprintf(b, "%s--%s: %s;\n", indent, pair.Name, pair.Color.HSL())
	}
	for _, pair := range aliasPairs(t) {
		fmt.Fprintf(b, "%s--%s: %s;\n", indent, pair.Name, pair.Color.HSL())
	}
	fmt.Fprintf(b, "%s--radius: %srem;\n", indent, FormatRadius(t.Radius))
}

// aliasPairs maps shadcn/ui extended token names onto the base palette so
// components built against sidebar-* and chart-* variables pick up the theme.
func aliasPairs(t palette.ThemeTokens) []palette.TokenPair {
	return []palette.TokenPair{
		{Name: "sidebar-background", Color: t.Background},
		{Name: "sidebar-foreground", Color: t.Foreground},
		{Name: "sidebar-primary", Color: t.Primary},
		{Name: "sidebar-primary-foreground", Color: t.PrimaryForeground},
		{Name: "sidebar-accent", Color: t.Accent},
		{Name: "sidebar-accent-foreground", Color: t.AccentForeground},
		{Name: "sidebar-border", Color: t.Border},
		{Name: "sidebar-ring", Color: t.Ring},
		{Name: "chart-1", Color: t.Primary},
		{Name: "chart-2", Color: t.Secondary},
		{Name: "chart-3", Color: t.Accent},
		{Name: "chart-4", Color: t.Success},
		{Name: "chart-5", Color: t.Warning},
	}
}

// FormatRadius renders a radius value without a trailing zero fraction,
// so 0.5 stays "0.5" and 1 becomes "1".
func FormatRadius(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

const baseStyles = `/* Base styles */
* {
  border-color: hsl(var(--border));
}

body {
  background-color: hsl(var(--background));
  color: hsl(var(--foreground));
  font-feature-settings: "rlig" 1, "calt" 1;
}

/* Smooth theme transitions */
*,
*::before,
*::after {
  transition: background-color 0.2s ease, border-color 0.2s ease, color 0.2s ease;
}

/* Reduce motion for users who prefer it */
@media (prefers-reduced-motion: reduce) {
  *,
  *::before,
  *::after {
    transition: none;
  }
}
`

const utilities = `/* Theme utility classes */

/* Backgrounds */
.bg-background { background-color: hsl(var(--background)); }
.bg-foreground { background-color: hsl(var(--foreground)); }
.bg-card { background-color: hsl(var(--card)); }
.bg-popover { background-color: hsl(var(--popover)); }
.bg-primary { background-color: hsl(var(--primary)); }
.bg-secondary { background-color: hsl(var(--secondary)); }
.bg-muted { background-color: hsl(var(--muted)); }
.bg-accent { background-color: hsl(var(--accent)); }
.bg-destructive { background-color: hsl(var(--destructive)); }
.bg-success { background-color: hsl(var(--success)); }
.bg-warning { background-color: hsl(var(--warning)); }

/* Text colors */
.text-foreground { color: hsl(var(--foreground)); }
.text-card-foreground { color: hsl(var(--card-foreground)); }
.text-popover-foreground { color: hsl(var(--popover-foreground)); }
.text-primary { color: hsl(var(--primary)); }
.text-primary-foreground { color: hsl(var(--primary-foreground)); }
.text-secondary-foreground { color: hsl(var(--secondary-foreground)); }
.text-muted-foreground { color: hsl(var(--muted-foreground)); }
.text-accent-foreground { color: hsl(var(--accent-foreground)); }
.text-destructive { color: hsl(var(--destructive)); }
.text-destructive-foreground { color: hsl(var(--destructive-foreground)); }
.text-success { color: hsl(var(--success)); }
.text-success-foreground { color: hsl(var(--success-foreground)); }
.text-warning { color: hsl(var(--warning)); }
.text-warning-foreground { color: hsl(var(--warning-foreground)); }

/* Borders */
.border-border { border-color: hsl(var(--border)); }
.border-input { border-color: hsl(var(--input)); }
.border-primary { border-color: hsl(var(--primary)); }
.border-secondary { border-color: hsl(var(--secondary)); }
.border-destructive { border-color: hsl(var(--destructive)); }
.border-success { border-color: hsl(var(--success)); }
.border-warning { border-color: hsl(var(--warning)); }

/* Ring (focus) */
.ring-ring { --tw-ring-color: hsl(var(--ring)); }

/* Rounded corners using theme radius */
.rounded-theme { border-radius: var(--radius); }
.rounded-theme-sm { border-radius: calc(var(--radius) - 0.25rem); }
.rounded-theme-md { border-radius: calc(var(--radius) + 0.25rem); }
.rounded-theme-lg { border-radius: calc(var(--radius) + 0.5rem); }

/* Common component patterns */
.card-theme {
  background-color: hsl(var(--card));
  color: hsl(var(--card-foreground));
  border: 1px solid hsl(var(--border));
  border-radius: var(--radius);
}

.btn-primary {
  background-color: hsl(var(--primary));
  color: hsl(var(--primary-foreground));
  border-radius: var(--radius);
}

.btn-primary:hover {
  background-color: hsl(var(--primary) / 0.9);
}

.btn-secondary {
  background-color: hsl(var(--secondary));
  color: hsl(var(--secondary-foreground));
  border-radius: var(--radius);
}

.btn-secondary:hover {
  background-color: hsl(var(--secondary) / 0.8);
}

.btn-destructive {
  background-color: hsl(var(--destructive));
  color: hsl(var(--destructive-foreground));
  border-radius: var(--radius);
}

.btn-destructive:hover {
  background-color: hsl(var(--destructive) / 0.9);
}

.input-theme {
  background-color: transparent;
  border: 1px solid hsl(var(--input));
  border-radius: var(--radius);
}

.input-theme:focus {
  outline: none;
  box-shadow: 0 0 0 2px hsl(var(--ring) / 0.5);
}

/* Badge variants */
.badge-primary {
  background-color: hsl(var(--primary));
  color: hsl(var(--primary-foreground));
}

.badge-secondary {
  background-color: hsl(var(--secondary));
  color: hsl(var(--secondary-foreground));
}

.badge-destructive {
  background-color: hsl(var(--destructive));
  color: hsl(var(--destructive-foreground));
}

.badge-success {
  background-color: hsl(var(--success));
  color: hsl(var(--success-foreground));
}

.badge-warning {
  background-color: hsl(var(--warning));
  color: hsl(var(--warning-foreground));
}
`
