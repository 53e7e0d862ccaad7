package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// Version is the tsumonya release version.
	Version = "0.1.0"
	// GitRepo is this module's canonical import path.
	GitRepo = "github.com/Cryolite/is-majsoul-fair"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version number and module path for tsumonya.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tsumonya version %s\n", Version)
		fmt.Printf("Paishan arithmetic-coding pipeline (BigInt -> Interval -> CoveringBinaryInterval -> IntervalToBinary/IntervalToEntropy)\n")
		fmt.Printf("\n")
		fmt.Printf("Module: %s\n", GitRepo)
	},
}
