package cmd

import (
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Rectangular tied column analysis and checks",
	Long: `Analyze rectangular tied reinforced concrete columns under combined
axial load and uniaxial bending, based on ACI 318-19 provisions.

Subcommands:
  diagram    - Generate the P-M interaction diagram for both axes
  check      - Check column adequacy against factored demands
  detailing  - Check reinforcement detailing requirements

All calculations follow the ACI 318-19 strength design method.`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}
