package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/quantik/board"
	"github.com/domino14/quantik/move"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a quantik position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// This is the cheap, incremental alternative to the canonical key: two
// symmetric positions hash differently here, but play/unplay updates are
// two XORs instead of a 384-element scan.
type Zobrist struct {
	theirTurn uint64

	// one random key per (square, color, shape) triple
	posTable [board.NumSquares][2 * board.NumShapes]uint64
}

func (z *Zobrist) Initialize() {
	for i := 0; i < board.NumSquares; i++ {
		for j := 0; j < 2*board.NumShapes; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.theirTurn = frand.Uint64n(bignum) + 1
}

func pieceIdx(c board.Color, sh board.Shape) int {
	return int(c)*board.NumShapes + int(sh)
}

// Hash computes the full hash of a position from scratch.
func (z *Zobrist) Hash(s board.State, theirTurn bool) uint64 {
	key := uint64(0)
	for sq := 0; sq < board.NumSquares; sq++ {
		if c, sh, ok := s.OccupantAt(sq); ok {
			key ^= z.posTable[sq][pieceIdx(c, sh)]
		}
	}
	if theirTurn {
		key ^= z.theirTurn
	}
	return key
}

// AddMove updates a hash incrementally for a placement. Applying the same
// move again undoes it, since the update is a pair of XORs.
func (z *Zobrist) AddMove(key uint64, m move.Move) uint64 {
	key ^= z.posTable[m.Square][pieceIdx(m.Player, m.Shape)]
	key ^= z.theirTurn
	return key
}
