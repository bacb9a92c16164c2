package game

import (
	"errors"
	"fmt"

	"github.com/domino14/quantik/board"
	"github.com/domino14/quantik/move"
)

var (
	// ErrShapeCount means a player holds more pieces of one shape than
	// the inventory allows.
	ErrShapeCount = errors.New("too many pieces of one shape")
	// ErrScopeConflict means both players hold the same shape on one
	// line, which no sequence of legal placements can produce.
	ErrScopeConflict = errors.New("both players hold a shape on the same line")
)

// ValidateState checks that a position is reachable by legal play: piece
// counts within inventory, a consistent turn balance, and no line holding
// the same shape from both players. Word disjointness is already
// guaranteed by board.State construction.
func ValidateState(s board.State) error {
	p0, p1 := s.PieceCounts()
	for sh := 0; sh < board.NumShapes; sh++ {
		if p0[sh] > board.MaxPiecesPerShape || p1[sh] > board.MaxPiecesPerShape {
			return fmt.Errorf("%w: shape %c", ErrShapeCount, 'A'+sh)
		}
	}

	if _, err := move.CurrentPlayer(s); err != nil {
		return err
	}

	for sh := board.Shape(0); sh < board.NumShapes; sh++ {
		w0 := s.Word(board.Player0, sh)
		w1 := s.Word(board.Player1, sh)
		for _, line := range board.WinMasks {
			if w0&line != 0 && w1&line != 0 {
				return fmt.Errorf("%w: shape %c", ErrScopeConflict, 'A'+sh)
			}
		}
	}
	return nil
}
