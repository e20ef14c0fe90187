package theme

import (
	"fmt"
	"html"
	"strings"

	"github.com/HerbHall/shadetree/internal/designsys"
)

// Feather-style mode icons, inlined so the fragment needs no asset
// pipeline.
const (
	iconSun  = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="5"></circle><line x1="12" y1="1" x2="12" y2="3"></line><line x1="12" y1="21" x2="12" y2="23"></line><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"></line><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"></line><line x1="1" y1="12" x2="3" y2="12"></line><line x1="21" y1="12" x2="23" y2="12"></line><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"></line><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"></line></svg>`
	iconMoon = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"></path></svg>`
)

// Switcher renders the theme switcher widget as an HTML fragment: a
// mode toggle button (omitted when dark mode is disabled), a preset
// dropdown, and a pack dropdown when any packs are registered. The
// client script binds the data-shadetree-action hooks to the selection
// API, so the fragment carries no inline JavaScript.
func Switcher(st State, presets []PresetInfo, packs []designsys.Pack, darkMode bool) string {
	var b strings.Builder
	b.WriteString(`<div class="shadetree-switcher">` + "\n")

	if darkMode {
		icon := iconSun
		if st.ResolvedMode == "dark" {
			icon = iconMoon
		}
		fmt.Fprintf(&b, `  <button type="button" class="shadetree-mode-toggle" data-shadetree-action="toggle" aria-label="Toggle theme mode" title="Toggle theme mode">%s</button>`+"\n", icon)
	}

	b.WriteString(`  <select class="shadetree-preset-select" data-shadetree-action="set-preset" aria-label="Color preset">` + "\n")
	for _, p := range presets {
		selected := ""
		if p.Active {
			selected = " selected"
		}
		fmt.Fprintf(&b, `    <option value="%s"%s>%s</option>`+"\n",
			html.EscapeString(p.Name), selected, html.EscapeString(p.Label))
	}
	b.WriteString("  </select>\n")

	if len(packs) > 0 {
		b.WriteString(`  <select class="shadetree-pack-select" data-shadetree-action="set-pack" aria-label="Theme pack">` + "\n")
		b.WriteString(`    <option value="">No pack</option>` + "\n")
		for _, pk := range packs {
			selected := ""
			if pk.Name == st.Pack {
				selected = " selected"
			}
			fmt.Fprintf(&b, `    <option value="%s"%s>%s</option>`+"\n",
				html.EscapeString(pk.Name), selected, html.EscapeString(pk.Label))
		}
		b.WriteString("  </select>\n")
	}

	b.WriteString("</div>\n")
	return b.String()
}
