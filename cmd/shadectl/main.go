// Command shadectl is the operator CLI for Shadetree palettes: listing
// presets, auditing contrast, exporting build artifacts, and scaffolding
// configuration. Everything runs offline against the built-in presets
// plus any --preset-dir files; no server is required.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HerbHall/shadetree/internal/version"
	"github.com/HerbHall/shadetree/pkg/palette"
)

var presetDir string

var rootCmd = &cobra.Command{
	Use:   "shadectl",
	Short: "Operator CLI for Shadetree themes",
	Long: `shadectl works with Shadetree color presets offline: list and audit
palettes, export Tailwind and shadcn/ui artifacts, and build static
theme bundles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Short()
	rootCmd.PersistentFlags().StringVar(&presetDir, "preset-dir", "", "directory of preset TOML files to include")
}

// loadRegistry returns the built-in presets plus any operator preset
// files from --preset-dir.
func loadRegistry() (*palette.Registry, error) {
	reg := palette.NewBuiltinRegistry()
	if presetDir == "" {
		return reg, nil
	}
	presets, err := palette.LoadDir(presetDir)
	if err != nil {
		return nil, fmt.Errorf("loading preset directory: %w", err)
	}
	for _, p := range presets {
		if err := reg.Register(p); err != nil {
			return nil, fmt.Errorf("registering preset %q: %w", p.Name, err)
		}
	}
	return reg, nil
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
