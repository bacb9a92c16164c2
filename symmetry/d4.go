package symmetry

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/quantik/board"
)

// D4 identifies one of the 8 spatial symmetries of the square.
type D4 uint8

const (
	Identity D4 = iota
	Rot90
	Rot180
	Rot270
	ReflV
	ReflH
	ReflD
	ReflAD
)

// NumD4 is the order of the dihedral group of the square.
const NumD4 = 8

var d4Names = [NumD4]string{"id", "rot90", "rot180", "rot270", "reflV", "reflH", "reflD", "reflAD"}

func (d D4) String() string {
	return d4Names[d]
}

var d4Inverses = [NumD4]D4{Identity, Rot270, Rot180, Rot90, ReflV, ReflH, ReflD, ReflAD}

// Inverse returns the D4 element that undoes this one.
func (d D4) Inverse() D4 {
	return d4Inverses[d]
}

// rcFuncs maps a (row, col) to its image under each D4 element.
var rcFuncs = [NumD4]func(r, c int) (int, int){
	func(r, c int) (int, int) { return r, c },
	func(r, c int) (int, int) { return c, board.Dim - 1 - r },
	func(r, c int) (int, int) { return board.Dim - 1 - r, board.Dim - 1 - c },
	func(r, c int) (int, int) { return board.Dim - 1 - c, r },
	func(r, c int) (int, int) { return r, board.Dim - 1 - c },
	func(r, c int) (int, int) { return board.Dim - 1 - r, c },
	func(r, c int) (int, int) { return c, r },
	func(r, c int) (int, int) { return board.Dim - 1 - c, board.Dim - 1 - r },
}

// Mapping returns the square-index permutation for this element:
// Mapping()[i] is the image of square i.
func (d D4) Mapping() [board.NumSquares]int {
	var m [board.NumSquares]int
	for i := 0; i < board.NumSquares; i++ {
		r, c := board.RowCol(i)
		r2, c2 := rcFuncs[d](r, c)
		m[i] = board.Index(r2, c2)
	}
	return m
}

// MapSquare returns the image of a single square index under this element.
func (d D4) MapSquare(sq int) int {
	r, c := board.RowCol(sq)
	r2, c2 := rcFuncs[d](r, c)
	return board.Index(r2, c2)
}

var (
	permTablesOnce sync.Once
	// permTables[d][mask] is mask with its bits permuted by d. 8 tables of
	// 65536 uint16 entries, about 1 MiB; built once, read-only after.
	permTables [NumD4][]uint16
)

func buildPermTables() {
	start := time.Now()
	for d := D4(0); d < NumD4; d++ {
		mapping := d.Mapping()
		t := make([]uint16, 1<<16)
		for x := 0; x < 1<<16; x++ {
			y := uint16(0)
			for i, m := 0, x; m != 0; i, m = i+1, m>>1 {
				if m&1 != 0 {
					y |= 1 << mapping[i]
				}
			}
			t[x] = y
		}
		permTables[d] = t
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("built symmetry permutation tables")
}

// Permute16 applies a D4 element to a 16-bit mask via the lookup table.
// The first caller pays for table construction; the tables are immutable
// afterwards and safe for unbounded concurrent readers.
func Permute16(mask uint16, d D4) uint16 {
	permTablesOnce.Do(buildPermTables)
	return permTables[d][mask]
}
