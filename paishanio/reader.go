// Package paishanio reads the boundary tile-encoding format: one paishan
// per line, comma-separated decimal tile codes in [0, 37), each line 83 or
// 136 codes long.
package paishanio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Cryolite/is-majsoul-fair/tileset"
)

// ErrMalformedLine marks a line that doesn't parse as a well-formed
// paishan: a non-numeric field, a tile code out of [0, 37), or a length
// other than 83 or 136.
var ErrMalformedLine = errors.New("paishanio: malformed paishan line")

// Reader reads successive paishan from an underlying stream.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps r for line-oriented paishan reading.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Reader{scanner: scanner}
}

// Next returns the next paishan, or io.EOF once the stream is exhausted.
// Blank lines are skipped without counting as a paishan.
func (r *Reader) Next() ([]uint8, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		tiles := make([]uint8, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: field %q is not a decimal tile code", ErrMalformedLine, r.line, field)
			}
			if v >= tileset.NumSlots {
				return nil, fmt.Errorf("%w: line %d: tile code %d is out of range [0, %d)", ErrMalformedLine, r.line, v, tileset.NumSlots)
			}
			tiles[i] = uint8(v)
		}

		if len(tiles) != 83 && len(tiles) != tileset.NumTiles {
			return nil, fmt.Errorf("%w: line %d: paishan has %d tiles, want 83 or %d", ErrMalformedLine, r.line, len(tiles), tileset.NumTiles)
		}

		return tiles, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("paishanio: reading input: %w", err)
	}
	return nil, io.EOF
}

// Line returns the 1-based line number of the most recently returned
// paishan, for diagnostics.
func (r *Reader) Line() int {
	return r.line
}
