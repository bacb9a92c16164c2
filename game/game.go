// Package game is a stateful wrapper over the pure board core: it tracks
// inventories and move history, infers whose turn it is, applies and
// undoes moves, and reports the game result. Everything here consumes
// the core through its public value-type interfaces only.
package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/domino14/quantik/board"
	"github.com/domino14/quantik/move"
)

// Result is the outcome of a game in progress or finished.
type Result int

const (
	Ongoing Result = iota
	Player0Won
	Player1Won
)

func (r Result) String() string {
	switch r {
	case Player0Won:
		return "player 0 wins"
	case Player1Won:
		return "player 1 wins"
	}
	return "ongoing"
}

var errNoHistory = errors.New("no moves to unplay")

// Game wraps a State with turn and history tracking. Unlike the
// underlying State it is mutable and not safe for concurrent use.
type Game struct {
	state   board.State
	onTurn  board.Color
	history []move.Move
}

// New starts a game from the empty board.
func New() *Game {
	return &Game{state: board.Empty(), onTurn: board.Player0}
}

// FromState resumes a game from an arbitrary position. It fails if the
// position is not reachable by legal alternating play.
func FromState(s board.State) (*Game, error) {
	if err := ValidateState(s); err != nil {
		return nil, err
	}
	current, err := move.CurrentPlayer(s)
	if err != nil {
		return nil, err
	}
	return &Game{state: s, onTurn: current}, nil
}

// State returns the current position.
func (g *Game) State() board.State {
	return g.state
}

// PlayerOnTurn returns whose turn it is.
func (g *Game) PlayerOnTurn() board.Color {
	return g.onTurn
}

// MoveCount returns how many moves have been played through this Game.
func (g *Game) MoveCount() int {
	return len(g.history)
}

// LastMove returns the most recently played move, if any.
func (g *Game) LastMove() (move.Move, bool) {
	if len(g.history) == 0 {
		return move.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// Inventory returns the remaining piece counts per shape for a player.
func (g *Game) Inventory(c board.Color) [board.NumShapes]int {
	p0, p1 := g.state.PieceCounts()
	placed := p0
	if c == board.Player1 {
		placed = p1
	}
	var left [board.NumShapes]int
	for sh := range placed {
		left[sh] = board.MaxPiecesPerShape - placed[sh]
	}
	return left
}

// PlayMove validates and applies a move, advancing the turn.
func (g *Game) PlayMove(m move.Move) error {
	if err := m.Validate(g.state); err != nil {
		return err
	}
	g.state = m.Apply(g.state)
	g.onTurn = g.onTurn.Opponent()
	g.history = append(g.history, m)
	log.Debug().Stringer("move", m).Int("movecount", len(g.history)).Msg("played")
	return nil
}

// UnplayLastMove reverts the most recent move.
func (g *Game) UnplayLastMove() error {
	if len(g.history) == 0 {
		return errNoHistory
	}
	m := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.state = g.state.Remove(m.Player, m.Shape, m.Square)
	g.onTurn = g.onTurn.Opponent()
	return nil
}

// Result reports the game outcome. A completed line means the player who
// made the last move won; with no line, a player to move without a legal
// move loses by stalemate.
func (g *Game) Result() Result {
	if g.state.HasWinningLine() {
		// The mover who completed the line is the one not on turn now.
		if g.onTurn == board.Player0 {
			return Player1Won
		}
		return Player0Won
	}
	if !move.HasLegalMoves(g.state) {
		if g.onTurn == board.Player0 {
			return Player1Won
		}
		return Player0Won
	}
	return Ongoing
}

// Playing reports whether the game is still going.
func (g *Game) Playing() bool {
	return g.Result() == Ongoing
}
