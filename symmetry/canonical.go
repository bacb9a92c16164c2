package symmetry

import (
	"bytes"
	"encoding/binary"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/domino14/quantik/board"
)

// canonicalScan enumerates the full direct product of the three generator
// sets and keeps the lexicographically smallest serialized candidate. Every
// candidate is built with the same fixed composition order (spatial, then
// color swap, then shape reorder); ties between different transforms
// mapping to the same payload are harmless, as only the payload and one
// witness transform are kept.
func canonicalScan(s board.State) ([board.PayloadLen]byte, Transform) {
	words := s.Words()

	var best [board.PayloadLen]byte
	var bestT Transform
	first := true

	for d := D4(0); d < NumD4; d++ {
		var g [8]uint16
		for i, w := range words {
			g[i] = Permute16(w, d)
		}
		for _, swap := range [2]bool{false, true} {
			c0, c1 := 0, board.NumShapes
			if swap {
				c0, c1 = c1, c0
			}
			for _, perm := range AllShapePerms {
				var cand [board.PayloadLen]byte
				for sl := 0; sl < board.NumShapes; sl++ {
					binary.LittleEndian.PutUint16(cand[sl*2:], g[c0+int(perm[sl])])
					binary.LittleEndian.PutUint16(cand[8+sl*2:], g[c1+int(perm[sl])])
				}
				if first || bytes.Compare(cand[:], best[:]) < 0 {
					best = cand
					bestT = Transform{D4: d, ColorSwap: swap, ShapePerm: perm}
					first = false
				}
			}
		}
	}
	return best, bestT
}

// CanonicalPayload returns the 16-byte representative of the state's
// orbit: the byte-wise minimum over the images of all 384 group elements.
// It is deterministic and identical for any two states related by a
// spatial symmetry, a color swap, or a shape relabeling.
func CanonicalPayload(s board.State) [board.PayloadLen]byte {
	p, _ := canonicalScan(s)
	return p
}

// CanonicalForm returns the canonical state itself and a transform that
// maps s onto it.
func CanonicalForm(s board.State) (board.State, Transform) {
	p, t := canonicalScan(s)
	st, err := board.FromPayload(p[:])
	if err != nil {
		// The orbit of a valid state only contains valid states.
		panic(err)
	}
	return st, t
}

// CanonicalKey returns the 18-byte canonical key: version byte, flags
// byte with the canonical bit set, then the canonical payload. Stable
// across processes; usable as a transposition or cache index.
func CanonicalKey(s board.State) []byte {
	p := CanonicalPayload(s)
	key := make([]byte, 0, board.PackedLen)
	key = append(key, board.Version, board.FlagCanonical)
	return append(key, p[:]...)
}

// CanonicalKeys computes canonical keys for a batch of states on parallel
// workers. The per-state scans are independent; threads <= 0 uses one
// worker per CPU.
func CanonicalKeys(states []board.State, threads int) [][]byte {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	// Warm the tables before fanning out so the workers never contend on
	// the once guard.
	Permute16(0, Identity)

	keys := make([][]byte, len(states))
	g := errgroup.Group{}
	g.SetLimit(threads)
	for t := 0; t < threads; t++ {
		t := t
		g.Go(func() error {
			for i := t; i < len(states); i += threads {
				keys[i] = CanonicalKey(states[i])
			}
			return nil
		})
	}
	// The workers cannot fail; Wait just joins them.
	_ = g.Wait()
	return keys
}
