package codec

import (
	"github.com/Cryolite/is-majsoul-fair/bigint"
	"github.com/Cryolite/is-majsoul-fair/interval"
	"github.com/Cryolite/is-majsoul-fair/paishan"
)

// Encoder composes PermutationToInterval with either IntervalToBinary or
// IntervalToEntropy. It has no original-source analogue - the original
// implementation's two CLI mains each inline this composition themselves -
// so it exists purely to give Go callers a single call site for the 3-4-5
// or 3-4-6 pipeline spec.md §4.7 describes.
type Encoder struct {
	BitWidth uint
}

// NewEncoder returns an Encoder that produces n-bit outputs.
func NewEncoder(n uint) Encoder {
	return Encoder{BitWidth: n}
}

// ToInterval is PermutationToInterval, exposed here so callers that only
// need the intermediate Interval don't have to import paishan directly.
func (e Encoder) ToInterval(tiles []uint8) (interval.Interval, error) {
	return paishan.ToInterval(tiles)
}

// EncodeBits runs tiles through PermutationToInterval, CoveringBinaryInterval,
// and IntervalToBinary, returning the sampled bit-string.
func (e Encoder) EncodeBits(tiles []uint8, state *bigint.RandomState) ([]byte, error) {
	iv, err := paishan.ToInterval(tiles)
	if err != nil {
		return nil, err
	}
	return IntervalToBinary(iv, e.BitWidth, state)
}

// EncodeEntropy runs tiles through PermutationToInterval,
// CoveringBinaryInterval, and IntervalToEntropy, returning the entropy (in
// bits) of the distribution EncodeBits would have sampled from.
func (e Encoder) EncodeEntropy(tiles []uint8) (float64, error) {
	iv, err := paishan.ToInterval(tiles)
	if err != nil {
		return 0, err
	}
	return IntervalToEntropy(iv, e.BitWidth)
}
