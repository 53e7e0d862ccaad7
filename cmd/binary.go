package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Cryolite/is-majsoul-fair/bigint"
	"github.com/Cryolite/is-majsoul-fair/codec"
	"github.com/Cryolite/is-majsoul-fair/paishanio"
)

var (
	binarySeed uint64
	binaryBits uint
)

var binaryCmd = &cobra.Command{
	Use:   "binary [file]",
	Short: "Encode paishan into sampled random bytes",
	Long: `binary reads one paishan per line (comma-separated tile codes,
length 83 or 136) from a file argument or stdin, and for each one samples
an n-bit string from the arithmetic-coding interval it induces, writing
the bits packed MSB-first to stdout.

One random state is seeded once and shared across every paishan on the
input, matching a single paishan-to-binary session.

This is the default subcommand if none is specified.

Examples:
  tsumonya binary walls.txt > bits.bin
  cat walls.txt | tsumonya binary --seed 12345 --bits 512 > bits.bin`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBinary(args)
	},
}

func init() {
	binaryCmd.Flags().Uint64Var(&binarySeed, "seed", 0, "random state seed (default: time-based)")
	binaryCmd.Flags().UintVar(&binaryBits, "bits", 256, "bits sampled per paishan (must be a multiple of 8)")
}

func runBinary(args []string) {
	if binaryBits == 0 || binaryBits%8 != 0 {
		fmt.Fprintf(os.Stderr, "tsumonya: --bits must be a positive multiple of 8, got %d\n", binaryBits)
		os.Exit(1)
	}

	input, closeInput, err := openInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tsumonya: %v\n", err)
		os.Exit(2)
	}
	defer closeInput()

	seed := binarySeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	state := bigint.NewRandomState(seed)
	encoder := codec.NewEncoder(binaryBits)

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

		bits, err := encoder.EncodeBits(tiles, state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tsumonya: line %d: %v\n", reader.Line(), err)
			os.Exit(1)
		}

		if _, err := out.Write(packBits(bits)); err != nil {
			fmt.Fprintf(os.Stderr, "tsumonya: writing output: %v\n", err)
			os.Exit(2)
		}
		count++
	}

	fmt.Fprintf(os.Stderr, "tsumonya: encoded %d paishan\n", count)
}

// packBits packs a one-byte-per-bit vector (values 0 or 1, as produced by
// codec.IntervalToBinary) into real bytes, MSB first, 8 bits to a byte.
func packBits(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << uint(7-(i%8))
		}
	}
	return out
}

// openInput opens args[0] if given, else returns stdin. The returned close
// function is a no-op for stdin.
func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening %s: %w", args[0], err)
	}
	return f, func() { f.Close() }, nil
}
