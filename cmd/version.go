package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcc v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Column Design Tool")
		fmt.Println("Based on ACI 318-19 (Building Code Requirements for Structural Concrete)")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit: %s, built: %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
