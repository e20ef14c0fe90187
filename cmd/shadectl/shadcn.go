package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HerbHall/shadetree/internal/shadcn"
	"github.com/HerbHall/shadetree/pkg/palette"
)

var (
	shadcnImportName string
	shadcnExportOut  string
)

func init() {
	rootCmd.AddCommand(shadcnCmd)
	shadcnCmd.AddCommand(shadcnImportCmd)
	shadcnCmd.AddCommand(shadcnExportCmd)

	shadcnImportCmd.Flags().StringVar(&shadcnImportName, "name", "", "override the imported preset name")
	shadcnExportCmd.Flags().StringVarP(&shadcnExportOut, "output", "o", "", "write to file instead of stdout")
}

var shadcnCmd = &cobra.Command{
	Use:   "shadcn",
	Short: "Exchange themes with shadcn/ui",
	Long:  "Import and export presets in the shadcn/ui theme JSON format.",
}

var shadcnImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Convert a shadcn theme to a preset file",
	Long: `Parse a shadcn/ui theme JSON file and print the preset as TOML, ready
to drop into a preset directory.`,
	Example: `  shadectl shadcn import zinc.json --name zinc > presets/zinc.toml`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := shadcn.ParseFile(args[0])
		if err != nil {
			return err
		}
		if shadcnImportName != "" {
			p.Name = shadcnImportName
		}

		out, err := palette.EncodeFile(p)
		if err != nil {
			return err
		}
		return writeOutput("", out)
	},
}

var shadcnExportCmd = &cobra.Command{
	Use:   "export <preset>",
	Short: "Export a preset as shadcn theme JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		p, ok := reg.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown preset %q", args[0])
		}

		out, err := shadcn.Format(p)
		if err != nil {
			return err
		}
		return writeOutput(shadcnExportOut, append(out, '\n'))
	},
}
