package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Column definition, either from a file or from flags
	checkFile     string
	checkWidth    float64
	checkHeight   float64
	checkCover    float64
	checkBarMain  float64
	checkBarTrans float64
	checkBarsB    int
	checkBarsH    int
	checkFc       float64
	checkFy       float64

	// Factored demands
	checkPu  float64
	checkMux float64
	checkMuy float64

	// Output options
	checkPlot   bool
	checkOutput string
	checkPdf    string
)

var columnCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check column adequacy against factored demands",
	Long: `Check whether a rectangular tied column is adequate for a factored
axial load Pu and factored moments Mux (about the major axis) and
Muy (about the minor axis).

The column may be defined inline with flags or loaded from a JSON or
YAML file. The verdict compares each demand against the interaction
diagram of its axis; the moment capacity at Pu is linearly interpolated
between the canonical points. Reinforcement detailing is checked as well.

Examples:
  # Inline definition
  gorcc column check -b 400 --height 500 --d-main 20 --n-bar-b 3 --n-bar-h 4 \
      --pu 1200 --mux 150 --muy 80

  # From a column definition file, with a PDF report
  gorcc column check -f column.yaml --pu 1200 --mux 150 --pdf report.pdf`,
	Run: runColumnCheck,
}

func init() {
	columnCmd.AddCommand(columnCheckCmd)

	columnCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to column JSON or YAML definition file")

	// Geometry flags (ignored when --file is given)
	columnCheckCmd.Flags().Float64VarP(&checkWidth, "width", "b", 0, "Column width b (mm)")
	columnCheckCmd.Flags().Float64Var(&checkHeight, "height", 0, "Column height h (mm)")
	columnCheckCmd.Flags().Float64VarP(&checkCover, "cover", "c", cfg.Cover, "Clear concrete cover (mm)")

	// Reinforcement flags
	columnCheckCmd.Flags().Float64Var(&checkBarMain, "d-main", 0, "Main bar diameter (mm)")
	columnCheckCmd.Flags().Float64Var(&checkBarTrans, "d-trans", 10, "Tie bar diameter (mm)")
	columnCheckCmd.Flags().IntVar(&checkBarsB, "n-bar-b", 0, "Main bars along width b")
	columnCheckCmd.Flags().IntVar(&checkBarsH, "n-bar-h", 0, "Main bars along height h")

	// Material flags
	columnCheckCmd.Flags().Float64Var(&checkFc, "fc", cfg.Fc, "Concrete compressive strength f'c (MPa)")
	columnCheckCmd.Flags().Float64Var(&checkFy, "fy", cfg.Fy, "Steel yield strength fy (MPa)")

	// Demand flags
	columnCheckCmd.Flags().Float64Var(&checkPu, "pu", math.NaN(), "Factored axial load Pu (kN) [required]")
	columnCheckCmd.Flags().Float64Var(&checkMux, "mux", 0, "Factored moment about the major axis Mux (kN-m)")
	columnCheckCmd.Flags().Float64Var(&checkMuy, "muy", 0, "Factored moment about the minor axis Muy (kN-m)")

	// Output flags
	columnCheckCmd.Flags().BoolVar(&checkPlot, "plot", false, "Show ASCII interaction diagrams with the demand point")
	columnCheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Export diagram to image file (png, svg, pdf)")
	columnCheckCmd.Flags().StringVar(&checkPdf, "pdf", "", "Write a PDF calculation report")

	columnCheckCmd.MarkFlagRequired("pu")
}

func runColumnCheck(cmd *cobra.Command, args []string) {
	col, err := checkColumn()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	d, err := col.Diagram()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN ADEQUACY CHECK - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printColumnInputs(col)

	fmt.Println("FACTORED DEMANDS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axial Load (Pu):\t%.2f kN\n", checkPu)
	fmt.Fprintf(w, "  Moment, Major Axis (Mux):\t%.2f kN-m\n", checkMux)
	fmt.Fprintf(w, "  Moment, Minor Axis (Muy):\t%.2f kN-m\n", checkMuy)
	w.Flush()
	fmt.Println()

	// No demand at all is a trivial pass.
	if checkPu == 0 && checkMux == 0 && checkMuy == 0 {
		fmt.Println("  VERDICT: OK - no factored load demand")
		fmt.Println()
		return
	}

	adequacyX, err := d.CheckAdequacy(checkPu, checkMux, column.Major)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	adequacyY, err := d.CheckAdequacy(checkPu, checkMuy, column.Minor)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	detailing, err := col.CheckDetailing()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("ADEQUACY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Major Axis (Pu, Mux):\t%s\t%s\n", adequacyX.Status, adequacyX.Summary)
	fmt.Fprintf(w, "  Minor Axis (Pu, Muy):\t%s\t%s\n", adequacyY.Status, adequacyY.Summary)
	w.Flush()
	fmt.Println()

	fmt.Println("DETAILING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Steel Ratio (ρ):\t%.4f\t%s\n", detailing.Rho, okNg(detailing.IsRhoAdequate))
	fmt.Fprintf(w, "  Clear Bar Spacing:\t%.1f mm (min %.1f mm)\t%s\n",
		detailing.ClearSpacing, detailing.RequiredSpacing, okNg(detailing.IsSpacingAdequate))
	w.Flush()
	fmt.Println()

	verdict := "OK - column is adequate for the factored demands"
	if !adequacyX.IsAdequate || !adequacyY.IsAdequate {
		verdict = "NG - column is NOT adequate for the factored demands"
	}
	fmt.Printf("  ╔═════════════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  %s\n", verdict)
	fmt.Printf("  ╚═════════════════════════════════════════════════════════╝\n")
	fmt.Println()

	if checkPlot {
		fmt.Println(diagram.RenderEnvelope(d.Points(column.Major), checkPu, checkMux, "Major Axis (bending about X)"))
		fmt.Println(diagram.RenderEnvelope(d.Points(column.Minor), checkPu, checkMuy, "Minor Axis (bending about Y)"))
	}

	if checkOutput != "" {
		if err := diagram.ExportDiagram(d, checkPu, checkMux, checkMuy, checkOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram exported to: %s\n\n", checkOutput)
	}

	if checkPdf != "" {
		data, err := reportData(col, d)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		data.Pu, data.Mux, data.Muy = checkPu, checkMux, checkMuy
		data.AdequacyX, data.AdequacyY = adequacyX, adequacyY
		data.Detailing = detailing
		if err := report.WriteReport(checkPdf, data); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
			return
		}
		fmt.Printf("  Report written to: %s\n\n", checkPdf)
	}
}

// checkColumn resolves the column definition from the file or the flags.
func checkColumn() (*column.Column, error) {
	if checkFile != "" {
		return column.LoadFromFile(checkFile)
	}
	col := &column.Column{
		Width:      checkWidth,
		Height:     checkHeight,
		Cover:      checkCover,
		BarMain:    checkBarMain,
		BarTrans:   checkBarTrans,
		BarsAlongB: checkBarsB,
		BarsAlongH: checkBarsH,
		Fc:         checkFc,
		Fy:         checkFy,
	}
	if err := col.Validate(); err != nil {
		return nil, err
	}
	return col, nil
}

func okNg(ok bool) string {
	if ok {
		return "✓"
	}
	return "⚠"
}
