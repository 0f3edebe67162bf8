package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosieve/internal/diagram"
	"github.com/alexiusacademia/gosieve/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportWeights string
	reportSieves  string
	reportOutput  string
	reportTitle   string
	reportProject string
	reportAuthor  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the complete PDF test report",
	Long: `Assemble a single PDF document with the gradation table, the
semi-log passing curve and the interpretation summary.

The numerical results are identical to 'gosieve analyze'; this command
only adds the document assembly.

Examples:
  gosieve report --weights "0,50,100,150,150,100,50,0" -o report.pdf
  gosieve report -w "0,50,100,150,150,100,50,0" -o report.pdf \
      --title "Borehole BH-3, Sample S-2" --project "Riverside Embankment"`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportWeights, "weights", "w", "", "Comma-separated retained weights in grams, coarsest sieve first [required]")
	reportCmd.Flags().StringVarP(&reportSieves, "sieves", "s", "", "Comma-separated sieve openings in mm (default: standard stack)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "sieve_analysis_report.pdf", "Output PDF file")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Report author")

	reportCmd.MarkFlagRequired("weights")
}

func runReport(cmd *cobra.Command, args []string) error {
	result, err := buildAnalysis(reportSieves, reportWeights)
	if err != nil {
		return err
	}

	curve, err := diagram.RenderCurvePNG(result)
	if err != nil {
		return fmt.Errorf("rendering curve: %w", err)
	}

	doc, err := report.Build(result, curve, report.Options{
		Title:   reportTitle,
		Project: reportProject,
		Author:  reportAuthor,
	})
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	if err := os.WriteFile(reportOutput, doc, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Printf("Report written to: %s\n", reportOutput)
	return nil
}
