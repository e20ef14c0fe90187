// Package config provides typed views over the Viper settings tree.
// The server loads the raw tree (see server.LoadConfig); this package
// turns its sections into structs the rest of the process consumes.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Theme holds the theming defaults applied when a visitor has no stored
// selection, plus operator extension points.
type Theme struct {
	DefaultTheme   string        `mapstructure:"default_theme"`
	DefaultPreset  string        `mapstructure:"default_preset"`
	DefaultMode    string        `mapstructure:"default_mode"`
	EnableDarkMode bool          `mapstructure:"enable_dark_mode"`
	PresetDir      string        `mapstructure:"preset_dir"`
	CookieDomain   string        `mapstructure:"cookie_domain"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

// Auth holds the write-protection settings for the mutating API.
// An empty PasswordHash leaves the API open; see Enabled.
type Auth struct {
	PasswordHash string        `mapstructure:"password_hash"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

// Enabled reports whether token auth is configured.
func (a Auth) Enabled() bool {
	return a.PasswordHash != ""
}

// ThemeFromViper unmarshals the theme section.
func ThemeFromViper(v *viper.Viper) (Theme, error) {
	var t Theme
	if err := v.UnmarshalKey("theme", &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme config: %w", err)
	}
	return t, nil
}

// AuthFromViper unmarshals the auth section.
func AuthFromViper(v *viper.Viper) (Auth, error) {
	var a Auth
	if err := v.UnmarshalKey("auth", &a); err != nil {
		return Auth{}, fmt.Errorf("parsing auth config: %w", err)
	}
	return a, nil
}
