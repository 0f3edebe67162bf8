package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosieve/internal/sieve"
	"github.com/spf13/cobra"
)

var sievesCmd = &cobra.Command{
	Use:   "sieves",
	Short: "Print the standard sieve stack",
	Long: `Print the standard sieve stack in the order weight values must
be entered: coarsest opening first, pan last.

Every analysis command expects one weight per entry below,
comma-separated, including an explicit pan weight.`,
	Run: func(cmd *cobra.Command, args []string) {
		stack := sieve.StandardStack()

		fmt.Println()
		fmt.Println("STANDARD SIEVE STACK:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tOpening (mm)\n")
		fmt.Fprintf(w, "  ─\t────────────\n")
		for i := range stack.Sizes {
			fmt.Fprintf(w, "  %d\t%s\n", i+1, stack.Label(i))
		}
		w.Flush()
		fmt.Println()
		fmt.Printf("  Enter %d comma-separated weights (g), coarsest sieve first.\n", stack.Count())
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(sievesCmd)
}
