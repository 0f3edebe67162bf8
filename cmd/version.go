package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosieve/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosieve",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosieve v%s\n", version.Version)
		fmt.Println("Particle Size (Sieve) Gradation Analysis Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
