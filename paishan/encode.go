// Package paishan implements PermutationToInterval: folding an observed
// tile sequence into the rational sub-interval of [0, 1) that arithmetic
// coding assigns to it under the uniform distribution over 136-tile
// permutations.
package paishan

import (
	"fmt"

	"github.com/Cryolite/is-majsoul-fair/bigint"
	"github.com/Cryolite/is-majsoul-fair/interval"
	"github.com/Cryolite/is-majsoul-fair/tileset"
)

// MaxLength is the longest sequence ToInterval accepts (a full wall).
const MaxLength = tileset.NumTiles

// ToInterval folds the tile sequence P into its arithmetic-coding Interval.
// It fails with bigint.ErrInvalidArgument if any tile is out of range, if a
// tile's remaining multiplicity is already exhausted, or if P is longer than
// a full wall.
func ToInterval(tiles []uint8) (interval.Interval, error) {
	if len(tiles) > MaxLength {
		return interval.Interval{}, fmt.Errorf("%w: paishan has %d tiles, at most %d allowed", bigint.ErrInvalidArgument, len(tiles), MaxLength)
	}

	remaining := tileset.NewRemainingCounts()

	denominator := bigint.FromUint64(1)
	lower := bigint.FromUint64(0)
	upper := bigint.FromUint64(1)
	factor := uint64(tileset.NumTiles)

	for _, tile := range tiles {
		if int(tile) >= tileset.NumSlots {
			return interval.Interval{}, fmt.Errorf("%w: tile code %d is out of range [0, %d)", bigint.ErrInvalidArgument, tile, tileset.NumSlots)
		}
		if remaining[tile] == 0 {
			return interval.Interval{}, fmt.Errorf("%w: tile code %d has no remaining copies", bigint.ErrInvalidArgument, tile)
		}

		var offset uint64
		for slot := uint8(0); slot < tile; slot++ {
			offset += remaining[slot]
		}
		count := remaining[tile]

		delta, err := upper.Sub(lower)
		if err != nil {
			return interval.Interval{}, err
		}

		scaledLower, err := lower.MulUint64(factor)
		if err != nil {
			return interval.Interval{}, err
		}
		offsetTerm, err := delta.MulUint64(offset)
		if err != nil {
			return interval.Interval{}, err
		}
		newLower, err := scaledLower.Add(offsetTerm)
		if err != nil {
			return interval.Interval{}, err
		}

		countTerm, err := delta.MulUint64(count)
		if err != nil {
			return interval.Interval{}, err
		}
		newUpper, err := newLower.Add(countTerm)
		if err != nil {
			return interval.Interval{}, err
		}

		newDenominator, err := denominator.MulUint64(factor)
		if err != nil {
			return interval.Interval{}, err
		}

		lower = newLower
		upper = newUpper
		denominator = newDenominator

		remaining[tile]--
		factor--
	}

	return interval.New(denominator, lower, upper)
}
