package board

import (
	"fmt"
	"os"
	"strings"
)

var (
	ColorSupport = os.Getenv("QUANTIK_DISABLE_COLOR") != "on"
)

var shapeLetters = "ABCD"

// Rune returns the display character for a piece: uppercase for Player0,
// lowercase for Player1.
func Rune(c Color, sh Shape) rune {
	r := rune(shapeLetters[sh])
	if c == Player1 {
		r += 'a' - 'A'
	}
	return r
}

func squareDisplayString(c Color, sh Shape) string {
	repr := string(Rune(c, sh))
	if !ColorSupport {
		return repr
	}
	if c == Player0 {
		return fmt.Sprintf("\033[33m%s\033[0m", repr)
	}
	return fmt.Sprintf("\033[36m%s\033[0m", repr)
}

// String draws the board, one rank per line. For debugging.
func (s State) String() string {
	var sb strings.Builder
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			color, sh, ok := s.OccupantAt(Index(r, c))
			if !ok {
				sb.WriteByte('.')
			} else {
				sb.WriteString(squareDisplayString(color, sh))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
