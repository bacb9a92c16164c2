package board

// Dim is the dimension of the board.
const Dim = 4

// NumSquares is the total number of squares.
const NumSquares = Dim * Dim

// NumShapes is the number of distinct piece shapes per player.
const NumShapes = 4

// MaxPiecesPerShape is how many pieces of a single shape a player owns.
const MaxPiecesPerShape = 2

var (
	// RowMasks contains one 16-bit mask per row, row-major from the top.
	RowMasks = [Dim]uint16{
		0b0000000000001111,
		0b0000000011110000,
		0b0000111100000000,
		0b1111000000000000,
	}
	// ColMasks contains one mask per column, left to right.
	ColMasks = [Dim]uint16{
		0b0001000100010001,
		0b0010001000100010,
		0b0100010001000100,
		0b1000100010001000,
	}
	// ZoneMasks contains one mask per 2x2 zone: top-left, top-right,
	// bottom-left, bottom-right.
	ZoneMasks = [Dim]uint16{
		0b0000000000110011,
		0b0000000011001100,
		0b0011001100000000,
		0b1100110000000000,
	}

	// WinMasks is every line that can complete a win: the four rows, then
	// the four columns, then the four zones.
	WinMasks [3 * Dim]uint16

	// scopes[i] is the union of the row, column and zone containing square i.
	scopes [NumSquares]uint16
)

func init() {
	copy(WinMasks[0:], RowMasks[:])
	copy(WinMasks[Dim:], ColMasks[:])
	copy(WinMasks[2*Dim:], ZoneMasks[:])

	for i := 0; i < NumSquares; i++ {
		r, c := RowCol(i)
		scopes[i] = RowMasks[r] | ColMasks[c] | ZoneMasks[zoneIndex(r, c)]
	}
}

// Index converts a row and column to a 0-15 square index.
func Index(row, col int) int {
	return row*Dim + col
}

// RowCol converts a 0-15 square index to its row and column.
func RowCol(sq int) (int, int) {
	return sq / Dim, sq % Dim
}

func zoneIndex(row, col int) int {
	return (row/2)*2 + col/2
}

// Scope returns the union of the three line masks through a square: its
// row, its column, and its 2x2 zone.
func Scope(sq int) uint16 {
	return scopes[sq]
}

// LinesThrough returns the three line masks incident to a square, in the
// order row, column, zone.
func LinesThrough(sq int) [3]uint16 {
	r, c := RowCol(sq)
	return [3]uint16{RowMasks[r], ColMasks[c], ZoneMasks[zoneIndex(r, c)]}
}
