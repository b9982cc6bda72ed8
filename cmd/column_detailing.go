package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/spf13/cobra"
)

var (
	detailingWidth    float64
	detailingHeight   float64
	detailingCover    float64
	detailingBarMain  float64
	detailingBarTrans float64
	detailingBarsB    int
	detailingBarsH    int
	detailingFc       float64
	detailingFy       float64
)

var columnDetailingCmd = &cobra.Command{
	Use:   "detailing",
	Short: "Check reinforcement detailing of a tied column",
	Long: `Check the longitudinal reinforcement detailing of a rectangular tied
column against ACI 318-19 requirements:

  - Steel ratio within 1% to 8% of the gross area (Section 10.6.1.1)
  - Clear bar spacing at least 40mm, 1.5 main bar diameters, and
    4/3 of the nominal maximum aggregate size (Section 25.2.3)

Examples:
  gorcc column detailing -b 400 --height 500 --d-main 20 --n-bar-b 3 --n-bar-h 4`,
	Run: runColumnDetailing,
}

func init() {
	columnCmd.AddCommand(columnDetailingCmd)

	columnDetailingCmd.Flags().Float64VarP(&detailingWidth, "width", "b", 0, "Column width b (mm) [required]")
	columnDetailingCmd.Flags().Float64Var(&detailingHeight, "height", 0, "Column height h (mm) [required]")
	columnDetailingCmd.Flags().Float64VarP(&detailingCover, "cover", "c", cfg.Cover, "Clear concrete cover (mm)")
	columnDetailingCmd.Flags().Float64Var(&detailingBarMain, "d-main", 0, "Main bar diameter (mm) [required]")
	columnDetailingCmd.Flags().Float64Var(&detailingBarTrans, "d-trans", 10, "Tie bar diameter (mm)")
	columnDetailingCmd.Flags().IntVar(&detailingBarsB, "n-bar-b", 0, "Main bars along width b [required]")
	columnDetailingCmd.Flags().IntVar(&detailingBarsH, "n-bar-h", 0, "Main bars along height h [required]")
	columnDetailingCmd.Flags().Float64Var(&detailingFc, "fc", cfg.Fc, "Concrete compressive strength f'c (MPa)")
	columnDetailingCmd.Flags().Float64Var(&detailingFy, "fy", cfg.Fy, "Steel yield strength fy (MPa)")

	columnDetailingCmd.MarkFlagRequired("width")
	columnDetailingCmd.MarkFlagRequired("height")
	columnDetailingCmd.MarkFlagRequired("d-main")
	columnDetailingCmd.MarkFlagRequired("n-bar-b")
	columnDetailingCmd.MarkFlagRequired("n-bar-h")
}

func runColumnDetailing(cmd *cobra.Command, args []string) {
	col := &column.Column{
		Width:      detailingWidth,
		Height:     detailingHeight,
		Cover:      detailingCover,
		BarMain:    detailingBarMain,
		BarTrans:   detailingBarTrans,
		BarsAlongB: detailingBarsB,
		BarsAlongH: detailingBarsH,
		Fc:         detailingFc,
		Fy:         detailingFy,
	}

	result, err := col.CheckDetailing()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN REINFORCEMENT DETAILING - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printColumnInputs(col)

	fmt.Println("DETAILING CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Steel Ratio (ρ):\t%.4f\t(limits 0.0100 - 0.0800)\t%s\n",
		result.Rho, okNg(result.IsRhoAdequate))
	fmt.Fprintf(w, "  Clear Bar Spacing:\t%.1f mm\t(min %.1f mm)\t%s\n",
		result.ClearSpacing, result.RequiredSpacing, okNg(result.IsSpacingAdequate))
	w.Flush()
	fmt.Println()

	if result.IsRhoAdequate && result.IsSpacingAdequate {
		fmt.Println("  VERDICT: OK - detailing requirements are satisfied")
	} else {
		fmt.Println("  VERDICT: NG - detailing requirements are NOT satisfied")
	}
	fmt.Println()
}
