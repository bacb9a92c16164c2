package board

import (
	"errors"
	"math/bits"

	"github.com/cespare/xxhash"
)

// Color is a player color; Player0 moves first.
type Color uint8

const (
	Player0 Color = iota
	Player1
)

func (c Color) Opponent() Color {
	return 1 - c
}

// Shape is one of the four piece shapes.
type Shape uint8

const (
	ShapeA Shape = iota
	ShapeB
	ShapeC
	ShapeD
)

var (
	// ErrInvalidState is returned when the 8 words of a state are not
	// pairwise disjoint.
	ErrInvalidState = errors.New("state words are not pairwise disjoint")
	// ErrFormat is returned for a malformed binary record.
	ErrFormat = errors.New("malformed binary record")
	// ErrUnsupportedVersion is returned when a record's version byte is
	// outside the range this implementation understands.
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// Version is the binary record version this package reads and writes.
const Version = 1

// FlagCanonical marks a payload that has already been canonicalized.
const FlagCanonical byte = 1 << 1

// PackedLen is the size of a packed record: version byte, flags byte, and
// eight little-endian uint16 words.
const PackedLen = 18

// PayloadLen is the size of the word payload alone.
const PayloadLen = 16

// State is the bit-level state of a Quantik board: 8 disjoint 16-bit words,
// one per (color, shape) pair, in the fixed slot order C0S0..C0S3,
// C1S0..C1S3. Bit i of a word is set iff square i holds that piece. It is
// an immutable value; all transforms return new instances, so it is safe
// to share across concurrent readers.
type State struct {
	bb [8]uint16
}

// Empty returns the empty board.
func Empty() State {
	return State{}
}

// FromWords builds a State from 8 words in the fixed slot order. It fails
// with ErrInvalidState if any two words claim the same square.
func FromWords(words [8]uint16) (State, error) {
	var seen uint16
	for _, w := range words {
		if seen&w != 0 {
			return State{}, ErrInvalidState
		}
		seen |= w
	}
	return State{bb: words}, nil
}

// Words returns the 8 words in the fixed slot order.
func (s State) Words() [8]uint16 {
	return s.bb
}

// Word returns the word for one (color, shape) pair.
func (s State) Word(c Color, sh Shape) uint16 {
	return s.bb[int(c)*NumShapes+int(sh)]
}

// Occupancy returns the union of all 8 words; a set bit is an occupied
// square.
func (s State) Occupancy() uint16 {
	occ := uint16(0)
	for _, w := range s.bb {
		occ |= w
	}
	return occ
}

// ShapeUnion returns the squares holding a given shape, either color.
func (s State) ShapeUnion(sh Shape) uint16 {
	return s.bb[sh] | s.bb[NumShapes+int(sh)]
}

// OccupantAt returns the piece on a square, if any.
func (s State) OccupantAt(sq int) (Color, Shape, bool) {
	m := uint16(1) << sq
	for i, w := range s.bb {
		if w&m != 0 {
			return Color(i / NumShapes), Shape(i % NumShapes), true
		}
	}
	return 0, 0, false
}

// IsLegalPlacement reports whether color may put shape on the square: the
// square must be empty and the opponent must not hold the same shape
// anywhere in the square's row, column, or zone.
func (s State) IsLegalPlacement(c Color, sh Shape, sq int) bool {
	m := uint16(1) << sq
	if s.Occupancy()&m != 0 {
		return false
	}
	opp := s.Word(c.Opponent(), sh)
	return opp&Scope(sq) == 0
}

// LegalSquares returns the mask of squares where color may place shape.
// A square is excluded if occupied, or if it falls inside the scope of
// any opponent piece of the same shape.
func (s State) LegalSquares(c Color, sh Shape) uint16 {
	forbidden := s.Occupancy()
	opp := s.Word(c.Opponent(), sh)
	for opp != 0 {
		sq := bits.TrailingZeros16(opp)
		forbidden |= Scope(sq)
		opp &= opp - 1
	}
	return ^forbidden
}

// LineComplete reports whether a line mask is completed: every one of the
// four shapes appears somewhere on the line, regardless of color.
func (s State) LineComplete(line uint16) bool {
	for sh := Shape(0); sh < NumShapes; sh++ {
		if s.ShapeUnion(sh)&line == 0 {
			return false
		}
	}
	return true
}

// WinningLinesThrough returns the completed lines among the three lines
// incident to a square. It is the post-placement win check: after placing
// on sq, a non-empty result means the mover won.
func (s State) WinningLinesThrough(sq int) []uint16 {
	var won []uint16
	for _, line := range LinesThrough(sq) {
		if s.LineComplete(line) {
			won = append(won, line)
		}
	}
	return won
}

// HasWinningLine reports whether any of the twelve lines is complete.
func (s State) HasWinningLine() bool {
	for _, line := range WinMasks {
		if s.LineComplete(line) {
			return true
		}
	}
	return false
}

// Place returns a new state with a piece added on sq. The caller is
// responsible for legality; Place only guarantees the disjointness
// invariant by overwriting nothing (it panics if the square is occupied,
// which would indicate a caller bug).
func (s State) Place(c Color, sh Shape, sq int) State {
	m := uint16(1) << sq
	if s.Occupancy()&m != 0 {
		panic("place on occupied square")
	}
	s.bb[int(c)*NumShapes+int(sh)] |= m
	return s
}

// Remove returns a new state with the piece removed from sq, for undo.
func (s State) Remove(c Color, sh Shape, sq int) State {
	s.bb[int(c)*NumShapes+int(sh)] &^= uint16(1) << sq
	return s
}

// PieceCounts returns per-shape piece counts for both players.
func (s State) PieceCounts() (p0, p1 [NumShapes]int) {
	for sh := 0; sh < NumShapes; sh++ {
		p0[sh] = bits.OnesCount16(s.bb[sh])
		p1[sh] = bits.OnesCount16(s.bb[NumShapes+sh])
	}
	return p0, p1
}

// Fingerprint is a fast 64-bit digest of the raw (non-canonical) payload,
// for in-memory tables that don't need symmetry dedup.
func (s State) Fingerprint() uint64 {
	return xxhash.Sum64(s.Payload())
}
