package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List color presets",
	Long:  "List the built-in color presets plus any loaded from --preset-dir.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, reg.Len())
		for _, p := range reg.Presets() {
			rows = append(rows, []string{p.Name, p.Label, p.Light.Primary.HSL(), p.Dark.Primary.HSL()})
		}
		return writeTable(os.Stdout, []string{"NAME", "LABEL", "LIGHT PRIMARY", "DARK PRIMARY"}, rows)
	},
}
