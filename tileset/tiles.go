// Package tileset holds the fixed 37-slot tile multiplicity table that
// PermutationToInterval folds a tile sequence against. The partition and
// per-slot counts are fixed by the rules of the game the paishan comes from,
// not by anything configurable at runtime.
package tileset

// NumSlots is the number of distinct tile codes, [0, NumSlots).
const NumSlots = 37

// NumTiles is the total tile count in a full wall.
const NumTiles = 136

// Multiplicities holds, for each tile code, how many copies of that tile
// exist in a full 136-tile wall. Slots 0, 10, and 20 are the three red fives
// (manzu, pinzu, souzu), each a singleton; slots 5, 15, and 25 are the three
// ordinary (non-red) fives of those same suits, each reduced to a
// multiplicity of 3 to make room for their red counterpart. All other
// numbered slots and the seven honor slots (30-36) carry the usual 4 copies.
var Multiplicities = [NumSlots]uint64{
	// manzu 1-9
	1, 4, 4, 4, 4, 3, 4, 4, 4, 4,
	// pinzu 1-9
	1, 4, 4, 4, 4, 3, 4, 4, 4, 4,
	// souzu 1-9
	1, 4, 4, 4, 4, 3, 4, 4, 4, 4,
	// honors: east, south, west, north, white, green, red
	4, 4, 4, 4, 4, 4, 4,
}

// NewRemainingCounts returns a fresh copy of Multiplicities, suitable as the
// mutable "remaining tiles" vector PermutationToInterval folds over.
func NewRemainingCounts() [NumSlots]uint64 {
	return Multiplicities
}
