package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold Shadetree configuration",
	Long: `Write a starter shadetree.yaml and an example preset TOML into a
directory (default: current directory). Existing files are never
overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := os.MkdirAll(filepath.Join(dir, "presets"), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}

		cfgPath := filepath.Join(dir, "shadetree.yaml")
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("config file already exists: %s", cfgPath)
		}
		if err := os.WriteFile(cfgPath, []byte(starterConfig), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfgPath, err)
		}

		presetPath := filepath.Join(dir, "presets", "example.toml")
		if _, err := os.Stat(presetPath); err == nil {
			return fmt.Errorf("preset file already exists: %s", presetPath)
		}
		if err := os.WriteFile(presetPath, []byte(starterPreset), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", presetPath, err)
		}

		fmt.Printf("wrote %s\nwrote %s\n", cfgPath, presetPath)
		return nil
	},
}

const starterConfig = `# Shadetree server configuration. Every key is optional; the values
# shown are the defaults. Any key can also be set through the
# environment with a SHADE_ prefix, e.g. SHADE_SERVER_PORT=9090.

server:
  host: 0.0.0.0
  port: 8080
  data_dir: ./data
  # Reject mutating requests; useful behind a read-only mirror.
  read_only: false

logging:
  level: info
  # json for production, console for development.
  format: json

database:
  dsn: ./data/shadetree.db

theme:
  default_theme: material
  default_preset: default
  default_mode: system
  enable_dark_mode: true
  # Directory of preset TOML files loaded at startup.
  preset_dir: ./presets
  # How long idle visitor sessions are kept.
  session_ttl: 8760h

# Uncomment to require a bearer token for theme writes. Generate the
# bcrypt hash with: htpasswd -bnBC 10 "" <password> | tr -d ':\n'
#auth:
#  password_hash: ""
#  jwt_secret: ""
#  token_ttl: 1h

# Serve Swagger UI at /swagger/.
#dev_mode: true
`

const starterPreset = `# Example Shadetree preset. Colors are space-separated HSL triples,
# the same form the generated CSS variables use. Every color token is
# required in both tables; radius defaults to 0.5 (rem).

name = "example"
label = "Example"
description = "Starter palette; copy and adjust"

[light]
background = "0 0% 100%"
foreground = "224 71% 4%"
card = "0 0% 100%"
card_foreground = "224 71% 4%"
popover = "0 0% 100%"
popover_foreground = "224 71% 4%"
primary = "173 80% 40%"
primary_foreground = "0 0% 98%"
secondary = "220 14% 96%"
secondary_foreground = "224 71% 4%"
muted = "220 14% 96%"
muted_foreground = "220 9% 46%"
accent = "220 14% 96%"
accent_foreground = "224 71% 4%"
destructive = "0 84% 60%"
destructive_foreground = "0 0% 98%"
success = "142 76% 36%"
success_foreground = "0 0% 98%"
warning = "38 92% 50%"
warning_foreground = "0 0% 98%"
border = "220 13% 91%"
input = "220 13% 91%"
ring = "173 80% 40%"
radius = 0.5

[dark]
background = "224 71% 4%"
foreground = "210 20% 98%"
card = "224 71% 4%"
card_foreground = "210 20% 98%"
popover = "224 71% 4%"
popover_foreground = "210 20% 98%"
primary = "172 66% 50%"
primary_foreground = "224 71% 4%"
secondary = "215 28% 17%"
secondary_foreground = "210 20% 98%"
muted = "215 28% 17%"
muted_foreground = "218 11% 65%"
accent = "215 28% 17%"
accent_foreground = "210 20% 98%"
destructive = "0 63% 31%"
destructive_foreground = "0 0% 98%"
success = "142 69% 28%"
success_foreground = "0 0% 98%"
warning = "38 92% 40%"
warning_foreground = "0 0% 98%"
border = "215 28% 17%"
input = "215 28% 17%"
ring = "172 66% 50%"
radius = 0.5
`
