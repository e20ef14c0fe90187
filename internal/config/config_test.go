package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestThemeFromViper(t *testing.T) {
	v := viper.New()
	v.Set("theme.default_theme", "material")
	v.Set("theme.default_preset", "rose")
	v.Set("theme.default_mode", "dark")
	v.Set("theme.enable_dark_mode", true)
	v.Set("theme.preset_dir", "/etc/shadetree/presets")
	v.Set("theme.session_ttl", "8760h")

	tc, err := ThemeFromViper(v)
	if err != nil {
		t.Fatalf("ThemeFromViper: %v", err)
	}
	if tc.DefaultTheme != "material" {
		t.Errorf("DefaultTheme = %q, want %q", tc.DefaultTheme, "material")
	}
	if tc.DefaultPreset != "rose" {
		t.Errorf("DefaultPreset = %q, want %q", tc.DefaultPreset, "rose")
	}
	if tc.DefaultMode != "dark" {
		t.Errorf("DefaultMode = %q, want %q", tc.DefaultMode, "dark")
	}
	if !tc.EnableDarkMode {
		t.Error("EnableDarkMode = false, want true")
	}
	if tc.PresetDir != "/etc/shadetree/presets" {
		t.Errorf("PresetDir = %q, want %q", tc.PresetDir, "/etc/shadetree/presets")
	}
	if tc.SessionTTL != 8760*time.Hour {
		t.Errorf("SessionTTL = %v, want %v", tc.SessionTTL, 8760*time.Hour)
	}
}

func TestThemeFromViper_EmptyTree(t *testing.T) {
	tc, err := ThemeFromViper(viper.New())
	if err != nil {
		t.Fatalf("ThemeFromViper: %v", err)
	}
	if tc.DefaultPreset != "" {
		t.Errorf("DefaultPreset = %q, want empty", tc.DefaultPreset)
	}
}

func TestAuthFromViper(t *testing.T) {
	v := viper.New()
	v.Set("auth.password_hash", "$2a$10$abcdefghijklmnopqrstuv")
	v.Set("auth.jwt_secret", "sekrit")
	v.Set("auth.token_ttl", "1h")

	a, err := AuthFromViper(v)
	if err != nil {
		t.Fatalf("AuthFromViper: %v", err)
	}
	if a.PasswordHash != "$2a$10$abcdefghijklmnopqrstuv" {
		t.Errorf("PasswordHash = %q, want the configured hash", a.PasswordHash)
	}
	if a.JWTSecret != "sekrit" {
		t.Errorf("JWTSecret = %q, want %q", a.JWTSecret, "sekrit")
	}
	if a.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want %v", a.TokenTTL, time.Hour)
	}
	if !a.Enabled() {
		t.Error("Enabled() = false with password hash set, want true")
	}
}

func TestAuthEnabled_DefaultOff(t *testing.T) {
	var a Auth
	if a.Enabled() {
		t.Error("Enabled() = true for zero Auth, want false")
	}
}
