package palette

// ThemeTokens is the complete token set for one mode of a preset. The
// field set is fixed: every semantic token is a struct field, so an
// unknown token name is a compile error rather than a render-time
// surprise. Naming follows shadcn/ui conventions with success and
// warning extensions.
type ThemeTokens struct {
	Background Color `json:"background" toml:"background"`
	Foreground Color `json:"foreground" toml:"foreground"`

	Card           Color `json:"card" toml:"card"`
	CardForeground Color `json:"card_foreground" toml:"card_foreground"`

	Popover           Color `json:"popover" toml:"popover"`
	PopoverForeground Color `json:"popover_foreground" toml:"popover_foreground"`

	Primary           Color `json:"primary" toml:"primary"`
	PrimaryForeground Color `json:"primary_foreground" toml:"primary_foreground"`

	Secondary           Color `json:"secondary" toml:"secondary"`
	SecondaryForeground Color `json:"secondary_foreground" toml:"secondary_foreground"`

	Muted           Color `json:"muted" toml:"muted"`
	MutedForeground Color `json:"muted_foreground" toml:"muted_foreground"`

	Accent           Color `json:"accent" toml:"accent"`
	AccentForeground Color `json:"accent_foreground" toml:"accent_foreground"`

	Destructive           Color `json:"destructive" toml:"destructive"`
	DestructiveForeground Color `json:"destructive_foreground" toml:"destructive_foreground"`

	Success           Color `json:"success" toml:"success"`
	SuccessForeground Color `json:"success_foreground" toml:"success_foreground"`

	Warning           Color `json:"warning" toml:"warning"`
	WarningForeground Color `json:"warning_foreground" toml:"warning_foreground"`

	Border Color `json:"border" toml:"border"`
	Input  Color `json:"input" toml:"input"`
	Ring   Color `json:"ring" toml:"ring"`

	// Radius is the base border radius in rem.
	Radius float64 `json:"radius" toml:"radius"`
}

// TokenPair is one named color from a token set.
type TokenPair struct {
	Name  string
	Color Color
}

// Pairs returns the color tokens in their canonical emission order.
// The order is the declaration order of the token fields; generated CSS
// and exports rely on it being stable.
func (t ThemeTokens) Pairs() []TokenPair {
	return []TokenPair{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"card", t.Card},
		{"card-foreground", t.CardForeground},
		{"popover", t.Popover},
		{"popover-foreground", t.PopoverForeground},
		{"primary", t.Primary},
		{"primary-foreground", t.PrimaryForeground},
		{"secondary", t.Secondary},
		{"secondary-foreground", t.SecondaryForeground},
		{"muted", t.Muted},
		{"muted-foreground", t.MutedForeground},
		{"accent", t.Accent},
		{"accent-foreground", t.AccentForeground},
		{"destructive", t.Destructive},
		{"destructive-foreground", t.DestructiveForeground},
		{"success", t.Success},
		{"success-foreground", t.SuccessForeground},
		{"warning", t.Warning},
		{"warning-foreground", t.WarningForeground},
		{"border", t.Border},
		{"input", t.Input},
		{"ring", t.Ring},
	}
}

// TokenNames lists the canonical token names in emission order.
func TokenNames() []string {
	pairs := (ThemeTokens{}).Pairs()
	names := make([]string, len(pairs))
	for i, p := range pairs {
		names[i] = p.Name
	}
	return names
}

// TokenCount is the number of color tokens in a token set.
const TokenCount = 23
