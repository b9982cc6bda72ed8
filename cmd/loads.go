package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/aci"
	"github.com/spf13/cobra"
)

var (
	// Unfactored load effects, paired axial (kN) and moment (kN-m)
	loadsDead       []float64
	loadsLive       []float64
	loadsRoof       []float64
	loadsWind       []float64
	loadsEarthquake []float64
	loadsRain       []float64

	// Options
	loadsShowAll    bool
	loadsSimplified bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate factored column demands using ACI load combinations",
	Long: `Calculate the factored axial load (Pu) and moment (Mu) based on the
ACI 318-19 load combinations of Table 5.3.1.

Each load type takes a pair of values: the unfactored axial load in kN
followed by the unfactored moment in kN-m. A single value is taken as
axial only.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads: dead 500kN/40kN-m, live 300kN/25kN-m
  gorcc loads --dead 500,40 --live 300,25

  # Axial only, showing all combinations
  gorcc loads --dead 500 --live 300 --all`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	// Load effect flags
	loadsCmd.Flags().Float64SliceVarP(&loadsDead, "dead", "d", nil, "Dead load effects: axial(kN)[,moment(kN-m)]")
	loadsCmd.Flags().Float64SliceVarP(&loadsLive, "live", "l", nil, "Live load effects: axial(kN)[,moment(kN-m)]")
	loadsCmd.Flags().Float64SliceVarP(&loadsRoof, "roof", "r", nil, "Roof live load effects: axial(kN)[,moment(kN-m)]")
	loadsCmd.Flags().Float64SliceVarP(&loadsWind, "wind", "w", nil, "Wind load effects: axial(kN)[,moment(kN-m)]")
	loadsCmd.Flags().Float64SliceVarP(&loadsEarthquake, "earthquake", "e", nil, "Earthquake load effects: axial(kN)[,moment(kN-m)]")
	loadsCmd.Flags().Float64SliceVarP(&loadsRain, "rain", "R", nil, "Rain load effects: axial(kN)[,moment(kN-m)]")

	// Options
	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&loadsSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoads(cmd *cobra.Command, args []string) {
	effects := aci.LoadEffects{
		Dead:       effectFromPair(loadsDead),
		Live:       effectFromPair(loadsLive),
		Roof:       effectFromPair(loadsRoof),
		Wind:       effectFromPair(loadsWind),
		Earthquake: effectFromPair(loadsEarthquake),
		Rain:       effectFromPair(loadsRain),
	}

	if effects.IsZero() {
		fmt.Println("Error: Please provide at least one unfactored load effect.")
		fmt.Println("Use 'gorcc loads --help' for usage information.")
		return
	}

	combinations := aci.LoadCombinations
	if loadsSimplified {
		combinations = aci.SimplifiedCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ACI 318-19 FACTORED DEMAND CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOAD EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load Type\tAxial (kN)\tMoment (kN-m)\n")
	printEffect(w, "Dead Load (D)", effects.Dead)
	printEffect(w, "Live Load (L)", effects.Live)
	printEffect(w, "Roof Live Load (Lr)", effects.Roof)
	printEffect(w, "Wind Load (W)", effects.Wind)
	printEffect(w, "Earthquake Load (E)", effects.Earthquake)
	printEffect(w, "Rain Load (R)", effects.Rain)
	w.Flush()
	fmt.Println()

	governing, governingCombo := aci.GoverningDemand(effects, combinations)

	if loadsShowAll {
		fmt.Println("LOAD COMBINATIONS (ACI 318-19 Table 5.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tPu (kN)\tMu (kN-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────\t─────────\n")

		for _, combo := range combinations {
			d := combo.Factored(effects)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n", combo.ID, combo.Description, d.Axial, d.Moment, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  Pu = %.2f kN,  Mu = %.2f kN-m  \n", governing.Axial, governing.Moment)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()
}

// effectFromPair maps a flag value list onto an axial/moment pair. A single
// value is axial only; extra values are ignored.
func effectFromPair(v []float64) aci.Effect {
	var e aci.Effect
	if len(v) > 0 {
		e.Axial = v[0]
	}
	if len(v) > 1 {
		e.Moment = v[1]
	}
	return e
}

func printEffect(w *tabwriter.Writer, label string, e aci.Effect) {
	if e.Axial == 0 && e.Moment == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", label, e.Axial, e.Moment)
}
