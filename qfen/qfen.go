// Package qfen implements the QFEN text notation for Quantik board
// states: 4 slash-separated ranks of 4 characters, top rank first.
// '.' is an empty square; 'A'-'D' are Player0 shapes and 'a'-'d' are
// Player1 shapes. "A.bC/..../d..B/...a" is a mixed position.
package qfen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/quantik/board"
	"github.com/domino14/quantik/symmetry"
)

// ErrParse is returned for malformed QFEN text.
var ErrParse = errors.New("malformed QFEN")

// ToQFEN renders a state as its 19-character QFEN string.
func ToQFEN(s board.State) string {
	var sb strings.Builder
	for r := 0; r < board.Dim; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < board.Dim; c++ {
			color, sh, ok := s.OccupantAt(board.Index(r, c))
			if !ok {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(board.Rune(color, sh))
			}
		}
	}
	return sb.String()
}

// FromQFEN parses a QFEN string. Interior whitespace is tolerated and
// stripped before splitting, as some writers pad ranks for alignment.
func FromQFEN(q string) (board.State, error) {
	ranks := strings.Split(strings.ReplaceAll(q, " ", ""), "/")
	if len(ranks) != board.Dim {
		return board.State{}, fmt.Errorf("%w: need %d ranks, got %d", ErrParse, board.Dim, len(ranks))
	}

	var words [8]uint16
	for r, rank := range ranks {
		if len(rank) != board.Dim {
			return board.State{}, fmt.Errorf("%w: rank %d must have %d squares, got %q", ErrParse, r+1, board.Dim, rank)
		}
		for c := 0; c < board.Dim; c++ {
			ch := rank[c]
			if ch == '.' {
				continue
			}
			var color board.Color
			var sh board.Shape
			switch {
			case ch >= 'A' && ch <= 'D':
				color, sh = board.Player0, board.Shape(ch-'A')
			case ch >= 'a' && ch <= 'd':
				color, sh = board.Player1, board.Shape(ch-'a')
			default:
				return board.State{}, fmt.Errorf("%w: invalid character %q; must be A-D, a-d or '.'", ErrParse, string(ch))
			}
			words[int(color)*board.NumShapes+int(sh)] |= 1 << board.Index(r, c)
		}
	}

	s, err := board.FromWords(words)
	if err != nil {
		// One character per square, so the parse itself cannot double-claim;
		// keep the error in the parse taxonomy regardless.
		return board.State{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return s, nil
}

// CanonicalQFEN returns the QFEN of the canonical representative of the
// given position's orbit.
func CanonicalQFEN(q string) (string, error) {
	s, err := FromQFEN(q)
	if err != nil {
		return "", err
	}
	canon, _ := symmetry.CanonicalForm(s)
	return ToQFEN(canon), nil
}
