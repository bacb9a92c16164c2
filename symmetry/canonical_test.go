package symmetry

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/quantik/board"
)

// randomState scatters up to a dozen pieces with disjoint squares and at
// most two of each shape per color. Canonicalization must hold for every
// valid state, reachable or not, so no play-order legality is enforced.
func randomState() board.State {
	s := board.Empty()
	n := frand.Intn(13)
	for i := 0; i < n; i++ {
		sq := frand.Intn(board.NumSquares)
		if s.Occupancy()&(1<<sq) != 0 {
			continue
		}
		c := board.Color(frand.Intn(2))
		sh := board.Shape(frand.Intn(board.NumShapes))
		p0, p1 := s.PieceCounts()
		counts := p0
		if c == board.Player1 {
			counts = p1
		}
		if counts[sh] >= board.MaxPiecesPerShape {
			continue
		}
		s = s.Place(c, sh, sq)
	}
	return s
}

func TestGroupEnumeration(t *testing.T) {
	is := is.New(t)
	all := All()
	is.Equal(len(all), GroupSize)

	seen := make(map[string]bool, GroupSize)
	for _, tr := range all {
		is.True(!seen[tr.String()])
		seen[tr.String()] = true
	}
}

func TestApplyInverse(t *testing.T) {
	is := is.New(t)
	for trial := 0; trial < 50; trial++ {
		s := randomState()
		for _, tr := range All() {
			is.Equal(tr.Inverse().Apply(tr.Apply(s)), s)
		}
	}
}

func TestCanonicalGoldenVectors(t *testing.T) {
	is := is.New(t)

	p := CanonicalPayload(board.Empty())
	is.True(bytes.Equal(p[:], make([]byte, 16)))

	key := CanonicalKey(board.Empty())
	is.True(bytes.Equal(key, append([]byte{0x01, 0x02}, make([]byte, 16)...)))
}

// Two states symmetric by construction must produce byte-identical
// canonical payloads. This exact class of failure was observed in an
// earlier design of the canonicalizer, so it stays pinned as a
// regression test.
func TestCanonicalDeterminismRegression(t *testing.T) {
	is := is.New(t)

	corner := board.Empty().Place(board.Player0, board.ShapeA, 0)
	// the same piece at square 15 is the rot180 image of the corner state
	opposite := board.Empty().Place(board.Player0, board.ShapeA, 15)
	is.Equal(CanonicalPayload(corner), CanonicalPayload(opposite))

	// color swap alone
	swapped := board.Empty().Place(board.Player1, board.ShapeA, 0)
	is.Equal(CanonicalPayload(corner), CanonicalPayload(swapped))

	// shape relabeling alone
	relabeled := board.Empty().Place(board.Player0, board.ShapeD, 0)
	is.Equal(CanonicalPayload(corner), CanonicalPayload(relabeled))
}

func TestOrbitInvariance(t *testing.T) {
	is := is.New(t)
	all := All()
	for trial := 0; trial < 25; trial++ {
		s := randomState()
		want := CanonicalPayload(s)
		for _, tr := range all {
			is.Equal(CanonicalPayload(tr.Apply(s)), want)
		}
	}
}

func TestCanonicalMinimality(t *testing.T) {
	is := is.New(t)
	all := All()
	for trial := 0; trial < 50; trial++ {
		s := randomState()

		// explicit enumeration: minimum over every orbit image's payload
		var min []byte
		for _, tr := range all {
			p := tr.Apply(s).Payload()
			if min == nil || bytes.Compare(p, min) < 0 {
				min = p
			}
		}
		got := CanonicalPayload(s)
		is.True(bytes.Equal(got[:], min))
	}
}

func TestCanonicalIdempotence(t *testing.T) {
	is := is.New(t)
	for trial := 0; trial < 50; trial++ {
		s := randomState()
		canon, _ := CanonicalForm(s)
		is.Equal(CanonicalPayload(canon), CanonicalPayload(s))
		is.Equal(canon.Payload(), canonPayloadSlice(s))
	}
}

func canonPayloadSlice(s board.State) []byte {
	p := CanonicalPayload(s)
	return p[:]
}

func TestCanonicalFormWitness(t *testing.T) {
	is := is.New(t)
	for trial := 0; trial < 50; trial++ {
		s := randomState()
		canon, tr := CanonicalForm(s)
		is.Equal(tr.Apply(s), canon)
	}
}

func TestCanonicalKeysBatch(t *testing.T) {
	is := is.New(t)
	states := make([]board.State, 100)
	for i := range states {
		states[i] = randomState()
	}
	keys := CanonicalKeys(states, 4)
	is.Equal(len(keys), len(states))
	for i, s := range states {
		is.True(bytes.Equal(keys[i], CanonicalKey(s)))
	}
}

func BenchmarkCanonicalPayload(b *testing.B) {
	s := randomState()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CanonicalPayload(s)
	}
}
