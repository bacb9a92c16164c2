package move

import (
	"math/bits"

	"github.com/samber/lo"

	"github.com/domino14/quantik/board"
)

// GenerateLegal returns every legal move for the player to move, grouped
// by shape. An unreachable position yields no moves.
func GenerateLegal(s board.State) (board.Color, map[board.Shape][]Move) {
	current, err := CurrentPlayer(s)
	if err != nil {
		return board.Player0, nil
	}

	p0, p1 := s.PieceCounts()
	counts := p0
	if current == board.Player1 {
		counts = p1
	}

	byShape := make(map[board.Shape][]Move, board.NumShapes)
	for sh := board.Shape(0); sh < board.NumShapes; sh++ {
		byShape[sh] = nil
		if counts[sh] >= board.MaxPiecesPerShape {
			continue
		}
		legal := s.LegalSquares(current, sh)
		for legal != 0 {
			sq := bits.TrailingZeros16(legal)
			byShape[sh] = append(byShape[sh], Move{Player: current, Shape: sh, Square: sq})
			legal &= legal - 1
		}
	}
	return current, byShape
}

// GenerateLegalList flattens GenerateLegal into a single slice, ordered
// by shape then square.
func GenerateLegalList(s board.State) []Move {
	_, byShape := GenerateLegal(s)
	shapes := make([][]Move, 0, board.NumShapes)
	for sh := board.Shape(0); sh < board.NumShapes; sh++ {
		shapes = append(shapes, byShape[sh])
	}
	return lo.Flatten(shapes)
}

// HasLegalMoves reports whether the player to move has any move at all.
// No moves means the opponent wins by stalemate.
func HasLegalMoves(s board.State) bool {
	return len(GenerateLegalList(s)) > 0
}
