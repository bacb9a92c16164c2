// Package move sits on top of the board core: it defines the single move
// type (place one shape on one square), full legality validation, and
// legal-move generation. The core itself never tracks turns; whose turn
// it is gets inferred here from the piece-count balance.
package move

import (
	"errors"
	"fmt"

	"github.com/domino14/quantik/board"
	"github.com/domino14/quantik/symmetry"
)

var (
	// ErrTurnBalance means the piece counts cannot arise from legal
	// alternating play starting with Player0.
	ErrTurnBalance = errors.New("invalid turn balance")
	// ErrNotPlayerTurn means the mover is not the player to move.
	ErrNotPlayerTurn = errors.New("not this player's turn")
	// ErrOccupied means the target square already holds a piece.
	ErrOccupied = errors.New("square is occupied")
	// ErrShapeExhausted means the player has no pieces of the shape left.
	ErrShapeExhausted = errors.New("no pieces of this shape remain")
	// ErrIllegalPlacement means the opponent holds the same shape in the
	// square's row, column, or zone.
	ErrIllegalPlacement = errors.New("opponent holds this shape in scope")
)

// Move places one shape on one square for one player.
type Move struct {
	Player board.Color
	Shape  board.Shape
	Square int
}

func (m Move) String() string {
	r, c := board.RowCol(m.Square)
	return fmt.Sprintf("<%c r%dc%d>", board.Rune(m.Player, m.Shape), r, c)
}

// CurrentPlayer infers whose turn it is from the piece-count balance.
// Player0 moves first: equal totals mean Player0 to move, Player0 one
// ahead means Player1 to move, anything else is not a reachable position.
func CurrentPlayer(s board.State) (board.Color, error) {
	p0, p1 := s.PieceCounts()
	total0 := p0[0] + p0[1] + p0[2] + p0[3]
	total1 := p1[0] + p1[1] + p1[2] + p1[3]
	switch total0 - total1 {
	case 0:
		return board.Player0, nil
	case 1:
		return board.Player1, nil
	}
	return 0, ErrTurnBalance
}

// Validate checks a move against the full rules: turn order, square
// emptiness, the per-shape inventory limit, and the scope constraint.
func (m Move) Validate(s board.State) error {
	current, err := CurrentPlayer(s)
	if err != nil {
		return err
	}
	if m.Player != current {
		return ErrNotPlayerTurn
	}
	if s.Occupancy()&(1<<m.Square) != 0 {
		return ErrOccupied
	}
	p0, p1 := s.PieceCounts()
	counts := p0
	if m.Player == board.Player1 {
		counts = p1
	}
	if counts[m.Shape] >= board.MaxPiecesPerShape {
		return ErrShapeExhausted
	}
	if !s.IsLegalPlacement(m.Player, m.Shape, m.Square) {
		return ErrIllegalPlacement
	}
	return nil
}

// Apply returns the state after the move. It assumes the move is valid;
// call Validate first if unsure.
func (m Move) Apply(s board.State) board.State {
	return s.Place(m.Player, m.Shape, m.Square)
}

// Transformed maps the move through a symmetry element, so that a move
// found in a canonical position can be replayed in the original
// orientation (compose with the transform's Inverse for that direction).
func (m Move) Transformed(t symmetry.Transform) Move {
	out := Move{
		Player: m.Player,
		Square: t.D4.MapSquare(m.Square),
	}
	if t.ColorSwap {
		out.Player = m.Player.Opponent()
	}
	// The transform fills slot s from old shape perm[s], so a piece of
	// shape x lands in the slot whose perm entry is x.
	for sl, old := range t.Perm() {
		if board.Shape(old) == m.Shape {
			out.Shape = board.Shape(sl)
			break
		}
	}
	return out
}
