package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsumonya",
	Short: "tsumonya - paishan arithmetic-coding pipeline",
	Long: `tsumonya turns an observed mahjong wall permutation (a "paishan")
into verifiable random bits or an entropy estimate, by exact arithmetic
coding against the uniform distribution over 136-tile permutations.`,
	// If no subcommand is given, encode to bits - the common case.
	Run: func(cmd *cobra.Command, args []string) {
		binaryCmd.Run(binaryCmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	// If the first argument isn't a known subcommand, treat it as an
	// argument to the default ("binary") subcommand.
	if len(os.Args) > 1 {
		firstArg := os.Args[1]
		if firstArg != "binary" && firstArg != "entropy" &&
			firstArg != "version" && firstArg != "help" && firstArg != "completion" &&
			firstArg != "-h" && firstArg != "--help" {
			os.Args = append([]string{os.Args[0], "binary"}, os.Args[1:]...)
		}
	}

	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(binaryCmd)
	rootCmd.AddCommand(entropyCmd)
	rootCmd.AddCommand(versionCmd)
}
