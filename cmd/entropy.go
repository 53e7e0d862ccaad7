package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cryolite/is-majsoul-fair/codec"
	"github.com/Cryolite/is-majsoul-fair/paishanio"
)

var entropyBits uint

var entropyCmd = &cobra.Command{
	Use:   "entropy [file]",
	Short: "Print the Shannon entropy of each paishan's sampled distribution",
	Long: `entropy reads one paishan per line (comma-separated tile codes,
length 83 or 136) from a file argument or stdin, and for each one prints
the Shannon entropy, in bits, of the distribution an n-bit
interval_to_binary draw over it would have.

Examples:
  tsumonya entropy walls.txt --bits 256
  cat walls.txt | tsumonya entropy --bits 83`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runEntropy(args)
	},
}

func init() {
	entropyCmd.Flags().UintVar(&entropyBits, "bits", 256, "bit-width to evaluate entropy at")
}

func runEntropy(args []string) {
	if entropyBits == 0 {
		fmt.Fprintf(os.Stderr, "tsumonya: --bits must be positive, got %d\n", entropyBits)
		os.Exit(1)
	}

	input, closeInput, err := openInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tsumonya: %v\n", err)
		os.Exit(2)
	}
	defer closeInput()

	encoder := codec.NewEncoder(entropyBits)
	reader := paishanio.NewReader(input)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	count := 0
	for {
		tiles, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "tsumonya: %v\n", err)
			if errors.Is(err, paishanio.ErrMalformedLine) {
				os.Exit(1)
			}
			os.Exit(2)
		}

		h, err := encoder.EncodeEntropy(tiles)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tsumonya: line %d: %v\n", reader.Line(), err)
			os.Exit(1)
		}

		fmt.Fprintf(out, "%.10f\n", h)
		count++
	}

	fmt.Fprintf(os.Stderr, "tsumonya: evaluated %d paishan\n", count)
}
