package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HerbHall/shadetree/internal/tailwind"
)

var (
	// export colors flags
	exportColorsPreset string
	exportColorsFormat string
	exportColorsPkg    string
	exportColorsOut    string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportColorsCmd)

	exportColorsCmd.Flags().StringVar(&exportColorsPreset, "preset", "default", "preset to export")
	exportColorsCmd.Flags().StringVar(&exportColorsFormat, "format", "json", "output format: json or go")
	exportColorsCmd.Flags().StringVar(&exportColorsPkg, "package", "theme", "package name for go output")
	exportColorsCmd.Flags().StringVarP(&exportColorsOut, "output", "o", "", "write to file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export palette data",
	Long:  "Export preset colors for downstream build pipelines.",
}

var exportColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Export a preset's colors",
	Long:  "Export a preset's main colors as flat JSON or generated Go source.",
	Example: `  # Flat JSON keyed light-*/dark-*
  shadectl export colors --preset rose

  # Generated Go source for embedding
  shadectl export colors --preset rose --format go --package brand`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		p, ok := reg.Get(exportColorsPreset)
		if !ok {
			return fmt.Errorf("unknown preset %q", exportColorsPreset)
		}

		var out []byte
		switch exportColorsFormat {
		case "json":
			out, err = tailwind.ColorsJSON(p)
			if err != nil {
				return err
			}
			out = append(out, '\n')
		case "go":
			out = []byte(tailwind.ColorsGo(p, exportColorsPkg))
		default:
			return fmt.Errorf("unknown format %q (want json or go)", exportColorsFormat)
		}

		return writeOutput(exportColorsOut, out)
	},
}
