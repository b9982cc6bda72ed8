package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcc/internal/config"
	"github.com/alexiusacademia/gorcc/internal/logging"
	"github.com/alexiusacademia/gorcc/internal/version"
	"github.com/spf13/cobra"
)

// cfg must be initialized before the subcommand init() funcs run, since
// they seed their flag defaults from it.
var cfg = config.MustLoad()

var rootCmd = &cobra.Command{
	Use:   "gorcc",
	Short: "Reinforced Concrete Column Design Tool",
	Long: `gorcc - Go Reinforced Concrete Column Designer

A CLI tool for the analysis and design of reinforced concrete
tied columns based on ACI 318-19 provisions.

This tool helps structural engineers perform:
  - Axial-moment interaction diagram generation (both axes)
  - Column adequacy checks against factored demands
  - Reinforcement detailing checks (steel ratio, bar spacing)
  - Factored load calculation using ACI load combinations

All calculations follow the ACI 318-19 strength design method.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcc v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Column Designer                  ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the analysis and design of reinforced concrete")
		fmt.Println("  tied columns based on ACI 318-19.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored demand calculation using ACI load combinations")
		fmt.Println("    • P-M interaction diagrams about both principal axes")
		fmt.Println("    • Column adequacy checks for axial load and moment")
		fmt.Println("    • Reinforcement detailing checks")
		fmt.Println("    • Diagram export to image, Excel and PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gorcc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Setup(cfg.LogLevel)
	}
}
