package main

import (
	"github.com/spf13/cobra"

	"github.com/HerbHall/shadetree/internal/tailwind"
)

var (
	tailwindOut        string
	tailwindAllPresets bool
)

func init() {
	rootCmd.AddCommand(tailwindCmd)

	tailwindCmd.Flags().StringVarP(&tailwindOut, "output", "o", "", "write to file instead of stdout")
	tailwindCmd.Flags().BoolVar(&tailwindAllPresets, "all-presets", false, "include literal preset-{name} color blocks")
}

var tailwindCmd = &cobra.Command{
	Use:   "tailwind",
	Short: "Generate tailwind.config.js",
	Long: `Generate a tailwind.config.js whose color scale resolves through the
theme's CSS custom properties. One config serves every preset and mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		cfg := tailwind.Config(reg, tailwind.Options{IncludeAllPresets: tailwindAllPresets})
		return writeOutput(tailwindOut, []byte(cfg))
	},
}
