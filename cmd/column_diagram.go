package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Geometry inputs
	diagramWidth    float64
	diagramHeight   float64
	diagramCover    float64
	diagramBarMain  float64
	diagramBarTrans float64
	diagramBarsB    int
	diagramBarsH    int
	diagramFc       float64
	diagramFy       float64

	// Output options
	diagramPlot    bool
	diagramProfile bool
	diagramOutput  string
	diagramXlsx    string
)

var columnDiagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Generate the P-M interaction diagram of a tied column",
	Long: `Generate the axial-moment (P-M) interaction diagram of a rectangular
tied column about both principal axes.

Eight canonical points are computed per axis, from pure compression
(capped at 0.80·Po for tied columns) down to pure axial tension,
including the balanced and tension-controlled conditions.

Examples:
  # 400x500mm column, 20mm bars, 3 per face along b, 4 along h
  gorcc column diagram -b 400 --height 500 --d-main 20 --n-bar-b 3 --n-bar-h 4

  # With ASCII plot and PNG export
  gorcc column diagram -b 400 --height 500 --d-main 20 --n-bar-b 3 --n-bar-h 4 --plot -o diagram.png`,
	Run: runColumnDiagram,
}

func init() {
	columnCmd.AddCommand(columnDiagramCmd)

	// Geometry flags
	columnDiagramCmd.Flags().Float64VarP(&diagramWidth, "width", "b", 0, "Column width b (mm) [required]")
	columnDiagramCmd.Flags().Float64Var(&diagramHeight, "height", 0, "Column height h (mm) [required]")
	columnDiagramCmd.Flags().Float64VarP(&diagramCover, "cover", "c", cfg.Cover, "Clear concrete cover (mm)")

	// Reinforcement flags
	columnDiagramCmd.Flags().Float64Var(&diagramBarMain, "d-main", 0, "Main bar diameter (mm) [required]")
	columnDiagramCmd.Flags().Float64Var(&diagramBarTrans, "d-trans", 10, "Tie bar diameter (mm)")
	columnDiagramCmd.Flags().IntVar(&diagramBarsB, "n-bar-b", 0, "Main bars along width b [required]")
	columnDiagramCmd.Flags().IntVar(&diagramBarsH, "n-bar-h", 0, "Main bars along height h [required]")

	// Material flags
	columnDiagramCmd.Flags().Float64Var(&diagramFc, "fc", cfg.Fc, "Concrete compressive strength f'c (MPa)")
	columnDiagramCmd.Flags().Float64Var(&diagramFy, "fy", cfg.Fy, "Steel yield strength fy (MPa)")

	// Output flags
	columnDiagramCmd.Flags().BoolVar(&diagramPlot, "plot", false, "Show ASCII interaction diagram")
	columnDiagramCmd.Flags().BoolVar(&diagramProfile, "profile", false, "Show ASCII moment capacity profile")
	columnDiagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Export diagram to image file (png, svg, pdf)")
	columnDiagramCmd.Flags().StringVar(&diagramXlsx, "xlsx", "", "Export inputs and capacity tables to an Excel workbook")

	columnDiagramCmd.MarkFlagRequired("width")
	columnDiagramCmd.MarkFlagRequired("height")
	columnDiagramCmd.MarkFlagRequired("d-main")
	columnDiagramCmd.MarkFlagRequired("n-bar-b")
	columnDiagramCmd.MarkFlagRequired("n-bar-h")
}

func runColumnDiagram(cmd *cobra.Command, args []string) {
	col := &column.Column{
		Width:      diagramWidth,
		Height:     diagramHeight,
		Cover:      diagramCover,
		BarMain:    diagramBarMain,
		BarTrans:   diagramBarTrans,
		BarsAlongB: diagramBarsB,
		BarsAlongH: diagramBarsH,
		Fc:         diagramFc,
		Fy:         diagramFy,
	}

	d, err := col.Diagram()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN INTERACTION DIAGRAM - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printColumnInputs(col)
	printDerivedProperties(col)
	printCapacityTables(d)

	if diagramPlot {
		fmt.Println(diagram.RenderEnvelope(d.Points(column.Major), 0, 0, "Major Axis (bending about X)"))
		fmt.Println(diagram.RenderEnvelope(d.Points(column.Minor), 0, 0, "Minor Axis (bending about Y)"))
	}
	if diagramProfile {
		fmt.Println(diagram.RenderCapacityProfile(d.Points(column.Major), "Major axis"))
		fmt.Println(diagram.RenderCapacityProfile(d.Points(column.Minor), "Minor axis"))
	}

	if diagramOutput != "" {
		if err := diagram.ExportDiagram(d, 0, 0, 0, diagramOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram exported to: %s\n\n", diagramOutput)
	}

	if diagramXlsx != "" {
		data, err := reportData(col, d)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := report.WriteWorkbook(diagramXlsx, data); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
			return
		}
		fmt.Printf("  Workbook written to: %s\n\n", diagramXlsx)
	}
}

// printColumnInputs prints the input summary shared by the column subcommands.
func printColumnInputs(col *column.Column) {
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column Width (b):\t%.0f mm\n", col.Width)
	fmt.Fprintf(w, "  Column Height (h):\t%.0f mm\n", col.Height)
	fmt.Fprintf(w, "  Clear Cover:\t%.0f mm\n", col.Cover)
	fmt.Fprintf(w, "  Main Bar Diameter:\t%.0f mm\n", col.BarMain)
	fmt.Fprintf(w, "  Tie Bar Diameter:\t%.0f mm\n", col.BarTrans)
	fmt.Fprintf(w, "  Bars Along b:\t%d\n", col.BarsAlongB)
	fmt.Fprintf(w, "  Bars Along h:\t%d\n", col.BarsAlongH)
	fmt.Fprintf(w, "  Total Main Bars:\t%d\n", col.TotalBars())
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", col.Fc)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", col.Fy)
	w.Flush()
	fmt.Println()
}

func printDerivedProperties(col *column.Column) {
	sec, err := col.SectionProperties()
	if err != nil {
		return
	}
	mat, err := col.MaterialProperties()
	if err != nil {
		return
	}

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gross Area (Ag):\t%.0f mm²\n", sec.GrossArea)
	fmt.Fprintf(w, "  Total Steel Area (As):\t%.3f mm²\n", sec.SteelArea)
	fmt.Fprintf(w, "  Steel Ratio (ρ):\t%.4f\n", sec.Rho)
	fmt.Fprintf(w, "  Clear Spacing Along b:\t%.1f mm\n", sec.ClearSpacingB)
	fmt.Fprintf(w, "  Clear Spacing Along h:\t%.1f mm\n", sec.ClearSpacingH)
	w.Flush()
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ec:\t%.0f MPa\n", mat.Ec)
	fmt.Fprintf(w, "  Es:\t%.0f MPa\n", mat.Es)
	fmt.Fprintf(w, "  β₁:\t%.4f\n", mat.Beta1)
	fmt.Fprintf(w, "  εcu:\t%.4f\n", mat.EpsilonCU)
	fmt.Fprintf(w, "  Yield Strain (εy):\t%.5f\n", mat.YieldStrain)
	w.Flush()
	fmt.Println()
}

func printCapacityTables(d *column.InteractionDiagram) {
	for _, axis := range []column.Axis{column.Major, column.Minor} {
		fmt.Printf("CAPACITY POINTS - %s AXIS:\n", axisLabel(axis))
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Point\tφPn (kN)\tφMn (kN-m)\n")
		fmt.Fprintf(w, "  ─────\t────────\t──────────\n")
		for _, p := range d.Points(axis) {
			fmt.Fprintf(w, "  %d\t%.2f\t%.2f\n", p.Point, p.PhiPn, p.PhiMn)
		}
		w.Flush()
		fmt.Println()
	}
}

func axisLabel(axis column.Axis) string {
	if axis == column.Major {
		return "MAJOR (X)"
	}
	return "MINOR (Y)"
}

// reportData assembles the shared report payload for the export flags.
func reportData(col *column.Column, d *column.InteractionDiagram) (report.Data, error) {
	sec, err := col.SectionProperties()
	if err != nil {
		return report.Data{}, err
	}
	mat, err := col.MaterialProperties()
	if err != nil {
		return report.Data{}, err
	}
	return report.Data{
		Column:    col,
		Diagram:   d,
		Section:   sec,
		Materials: mat,
	}, nil
}
