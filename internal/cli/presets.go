package cli

import (
	"fmt"

	"github.com/eeatgrader/eeatgrader/internal/model"
	"github.com/eeatgrader/eeatgrader/internal/preset"
	"github.com/spf13/cobra"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available scoring presets",
	Long: `List the scoring presets and their dimension weights.

Presets tune how the four E-E-A-T dimensions are weighted in the
overall score and which signals are required for the content type.
Pass one to 'analyze' or 'batch' with --preset to override
auto-detection.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-22s %-20s %5s %5s %5s %5s\n", "PRESET", "LABEL", "EXP", "EXS", "AUTH", "TRUST")
		for _, p := range model.AllPresets() {
			cfg := preset.Get(p)
			fmt.Printf("%-22s %-20s %5.0f %5.0f %5.0f %5.0f\n",
				p, cfg.Label,
				cfg.ExperienceWeight, cfg.ExpertiseWeight,
				cfg.AuthoritativenessWeight, cfg.TrustWeight)
			if len(cfg.RequiredSignals) > 0 {
				for _, s := range cfg.RequiredSignals {
					fmt.Printf("%-22s   requires: %s\n", "", s)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
