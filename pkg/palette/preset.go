package palette

// Mode is the user-facing light/dark/system selection. It is independent
// of the preset: any preset can render in either mode.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// Valid reports whether m is one of the three recognized modes.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark || m == ModeSystem
}

// Preset is a named, complete color palette covering both modes.
// Presets are built once and treated as immutable values; the registry
// copies them on registration and lookup.
type Preset struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
	Light       ThemeTokens `json:"light"`
	Dark        ThemeTokens `json:"dark"`
}

// Tokens returns the token set for a resolved mode. Anything other than
// ModeDark yields the light set; callers resolve ModeSystem before asking.
func (p Preset) Tokens(mode Mode) ThemeTokens {
	if mode == ModeDark {
		return p.Dark
	}
	return p.Light
}
