package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosieve/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	chartWeights string
	chartSieves  string
	chartOutput  string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export the passing curve to an image file",
	Long: `Render the particle size distribution curve and save it to a file.

The chart plots cumulative % passing (linear, 0-100) against sieve
size on a logarithmic axis, with tick marks at the stack openings.
The pan is excluded since it has no opening size. The output format
follows the file extension: png, svg or pdf.

Examples:
  gosieve chart --weights "0,50,100,150,150,100,50,0" -o curve.png
  gosieve chart -w "0,50,100,150,150,100,50,0" -o curve.svg`,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVarP(&chartWeights, "weights", "w", "", "Comma-separated retained weights in grams, coarsest sieve first [required]")
	chartCmd.Flags().StringVarP(&chartSieves, "sieves", "s", "", "Comma-separated sieve openings in mm (default: standard stack)")
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "curve.png", "Output image file (png, svg, pdf)")

	chartCmd.MarkFlagRequired("weights")
}

func runChart(cmd *cobra.Command, args []string) error {
	result, err := buildAnalysis(chartSieves, chartWeights)
	if err != nil {
		return err
	}

	if err := diagram.ExportCurve(result, chartOutput); err != nil {
		return fmt.Errorf("exporting curve: %w", err)
	}
	fmt.Printf("Passing curve exported to: %s\n", chartOutput)
	return nil
}
