package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosieve/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosieve",
	Short: "Particle Size (Sieve) Gradation Analysis Tool",
	Long: `gosieve - Go Sieve Analysis Tool

A CLI tool for particle-size gradation analysis of soil samples
from laboratory sieve test data.

This tool helps geotechnical engineers perform:
  - Gradation table computation (% retained, cumulative, % passing)
  - Characteristic diameter interpolation (D10, D30, D60)
  - Uniformity (Cu) and curvature (Cc) coefficient evaluation
  - Soil classification and gradation labeling
  - Passing curve charts and PDF test reports

Weights are entered in grams, sieve openings in millimeters.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosieve v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Sieve Analysis Tool                                  ║")
		fmt.Printf("  ║   %s ©  %s                               ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for particle-size gradation analysis of soil")
		fmt.Println("  samples from laboratory sieve test data.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Gradation table from retained weights")
		fmt.Println("    • D10/D30/D60 interpolation with Cu and Cc")
		fmt.Println("    • Soil classification and gradation labeling")
		fmt.Println("    • Semi-log passing curve export (PNG/SVG/PDF)")
		fmt.Println("    • Complete PDF test report")
		fmt.Println()
		fmt.Println("  Use 'gosieve --help' to see available commands.")
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

	// Validation failures are reported once, through Execute.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
