package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosieve/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	analyzeWeights   string
	analyzeSieves    string
	analyzeShowChart bool
	analyzeExport    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full gradation analysis from retained weights",
	Long: `Compute the gradation table, characteristic diameters and soil
classification for a sieve test sample.

Weights are entered in grams as a comma-separated list, one value per
sieve in the stack order (coarsest first, pan last). Use 'gosieve
sieves' to see the standard stack.

The analysis reports:
  - % retained, cumulative % retained and % passing per sieve
  - D10, D30, D60 by linear interpolation on the passing curve
  - Uniformity coefficient Cu and coefficient of curvature Cc
  - Gradation (well-/poorly-graded) and soil type from D10

Examples:
  # Standard 8-entry stack (7 sieves + pan)
  gosieve analyze --weights "0,50,100,150,150,100,50,0"

  # With the terminal chart
  gosieve analyze -w "0,50,100,150,150,100,50,0" --chart

  # Custom stack (pan appended automatically)
  gosieve analyze --sieves "9.5,4.75,2.36,1.18,0.600" -w "0,120,260,310,200,110"`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeWeights, "weights", "w", "", "Comma-separated retained weights in grams, coarsest sieve first [required]")
	analyzeCmd.Flags().StringVarP(&analyzeSieves, "sieves", "s", "", "Comma-separated sieve openings in mm (default: standard stack)")
	analyzeCmd.Flags().BoolVar(&analyzeShowChart, "chart", false, "Show ASCII passing curve")
	analyzeCmd.Flags().StringVarP(&analyzeExport, "output", "o", "", "Export passing curve to file (png, svg, pdf)")

	analyzeCmd.MarkFlagRequired("weights")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	result, err := buildAnalysis(analyzeSieves, analyzeWeights)
	if err != nil {
		return err
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("             PARTICLE SIZE GRADATION ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("SAMPLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sieves (incl. pan):\t%d\n", result.Spec.Count())
	fmt.Fprintf(w, "  Total weight:\t%.2f g\n", result.TotalWeight)
	w.Flush()
	fmt.Println()

	// Gradation table
	fmt.Println("GRADATION TABLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Sieve (mm)\tWeight (g)\t%% Retained\tCum. %% Ret.\t%% Passing\n")
	fmt.Fprintf(w, "  ──────────\t──────────\t──────────\t───────────\t─────────\n")
	for i, r := range result.Rows {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			result.Spec.Label(i), r.WeightRetained, r.PercentRetained, r.CumulativeRetained, r.PercentPassing)
	}
	w.Flush()
	fmt.Println()

	// Characteristic diameters and coefficients
	fmt.Println("INTERPRETATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  D10 (effective size):\t%.3f mm\n", result.D10)
	fmt.Fprintf(w, "  D30:\t%.3f mm\n", result.D30)
	fmt.Fprintf(w, "  D60:\t%.3f mm\n", result.D60)
	fmt.Fprintf(w, "  Cu (uniformity):\t%.2f\n", result.Cu)
	fmt.Fprintf(w, "  Cc (curvature):\t%.2f\n", result.Cc)
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("CLASSIFICATION", []string{
		fmt.Sprintf("Gradation: %s", result.Gradation),
		fmt.Sprintf("Soil type: %s", result.Classification),
	}))

	// Show chart if requested
	if analyzeShowChart {
		fmt.Println(diagram.DrawASCIICurve(result))
	}

	// Export chart if requested
	if analyzeExport != "" {
		if err := diagram.ExportCurve(result, analyzeExport); err != nil {
			return fmt.Errorf("exporting curve: %w", err)
		}
		fmt.Printf("Passing curve exported to: %s\n", analyzeExport)
		fmt.Println()
	}

	return nil
}
