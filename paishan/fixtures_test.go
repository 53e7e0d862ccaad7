package paishan

import (
	"github.com/Cryolite/is-majsoul-fair/prng"
	"github.com/Cryolite/is-majsoul-fair/tileset"
)

// randomFullPaishan returns a uniformly random permutation of the full
// 136-tile multiset, seeded deterministically. It builds the multiset array
// directly - one entry per tile code, repeated tileset.Multiplicities[code]
// times - and Fisher-Yates shuffles it in place, which gives a uniform
// distribution over permutations of the multiset without needing any index
// remap table for the three red fives.
func randomFullPaishan(seed uint64) []uint8 {
	tiles := make([]uint8, 0, tileset.NumTiles)
	for slot, mult := range tileset.Multiplicities {
		for i := uint64(0); i < mult; i++ {
			tiles = append(tiles, uint8(slot))
		}
	}

	src := prng.New(seed)
	for i := len(tiles) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	return tiles
}

// randomPrefix returns the first n tiles of a uniformly random full paishan.
func randomPrefix(seed uint64, n int) []uint8 {
	full := randomFullPaishan(seed)
	return full[:n]
}
