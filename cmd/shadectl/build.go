package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HerbHall/shadetree/internal/bundle"
)

var (
	buildOut    string
	buildMinify bool
	buildSystem string
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOut, "output", "o", "dist/themes", "output directory")
	buildCmd.Flags().BoolVar(&buildMinify, "minify", false, "also write .min.css variants")
	buildCmd.Flags().StringVar(&buildSystem, "system", "", "design system (default: material)")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static theme bundle",
	Long: `Write every preset and pack stylesheet, the client script, and a JSON
manifest to a directory, for serving from a CDN or static file host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		manifest, err := bundle.Build(cmd.Context(), buildOut, bundle.Options{
			System:   buildSystem,
			Registry: reg,
			Minify:   buildMinify,
		})
		if err != nil {
			return err
		}

		fmt.Printf("built %d files (%d presets, %d packs) in %s\n",
			len(manifest.Files), len(manifest.Presets), len(manifest.Packs), buildOut)
		return nil
	},
}
