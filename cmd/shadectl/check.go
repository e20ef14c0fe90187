package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HerbHall/shadetree/internal/contrast"
	"github.com/HerbHall/shadetree/pkg/palette"
)

var (
	checkPreset string
	checkLevel  string
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkPreset, "preset", "", "check a single preset (default: all)")
	checkCmd.Flags().StringVar(&checkLevel, "level", "aa", "conformance level: aa or aaa")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit preset contrast",
	Long: `Audit WCAG 2.1 contrast ratios for the text color pairs of each preset,
in both modes. Exits non-zero when any pair falls below the requested
level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var threshold float64
		switch checkLevel {
		case "aa":
			threshold = contrast.AANormal
		case "aaa":
			threshold = contrast.AAANormal
		default:
			return fmt.Errorf("unknown level %q (want aa or aaa)", checkLevel)
		}

		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		presets := reg.Presets()
		if checkPreset != "" {
			p, ok := reg.Get(checkPreset)
			if !ok {
				return fmt.Errorf("unknown preset %q", checkPreset)
			}
			presets = []palette.Preset{p}
		}

		failures := 0
		var rows [][]string
		for _, p := range presets {
			for _, f := range contrast.TextFindings(contrast.AuditPreset(p)) {
				status := "pass"
				if f.Ratio < threshold {
					status = "FAIL"
					failures++
				}
				rows = append(rows, []string{
					p.Name, string(f.Mode), f.Pair,
					fmt.Sprintf("%.2f", f.Ratio), status,
				})
			}
		}

		if err := writeTable(os.Stdout, []string{"PRESET", "MODE", "PAIR", "RATIO", "STATUS"}, rows); err != nil {
			return err
		}

		level := strings.ToUpper(checkLevel)
		if failures > 0 {
			return fmt.Errorf("%d contrast pair(s) below %s", failures, level)
		}
		fmt.Printf("all %d pairs meet %s\n", len(rows), level)
		return nil
	},
}
