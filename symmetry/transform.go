package symmetry

import (
	"fmt"

	"github.com/domino14/quantik/board"
)

// ShapePerm is a permutation of the four shape labels.
type ShapePerm [board.NumShapes]uint8

// NumShapePerms is 4!, the number of shape relabelings.
const NumShapePerms = 24

// IdentityPerm leaves the shape labels alone.
var IdentityPerm = ShapePerm{0, 1, 2, 3}

// AllShapePerms holds all 24 shape permutations in lexicographic order.
var AllShapePerms [NumShapePerms]ShapePerm

func init() {
	idx := 0
	var rec func(prefix []uint8, rest []uint8)
	rec = func(prefix []uint8, rest []uint8) {
		if len(rest) == 0 {
			copy(AllShapePerms[idx][:], prefix)
			idx++
			return
		}
		for i, v := range rest {
			next := make([]uint8, 0, len(rest)-1)
			next = append(next, rest[:i]...)
			next = append(next, rest[i+1:]...)
			rec(append(prefix, v), next)
		}
	}
	rec(nil, []uint8{0, 1, 2, 3})
}

// Inverse returns the permutation that undoes p.
func (p ShapePerm) Inverse() ShapePerm {
	var inv ShapePerm
	for i, v := range p {
		inv[v] = uint8(i)
	}
	return inv
}

// GroupSize is the order of the full symmetry group: 8 spatial elements,
// 2 color assignments, 24 shape relabelings.
const GroupSize = NumD4 * 2 * NumShapePerms

// Transform is one element of the full symmetry group: a D4 spatial
// element, an optional swap of the two colors, and a shape relabeling.
// The three sub-transforms are applied in that fixed order.
type Transform struct {
	D4        D4
	ColorSwap bool
	ShapePerm ShapePerm
}

func (t Transform) String() string {
	return fmt.Sprintf("<%v swap: %v perm: %v>", t.D4, t.ColorSwap, t.Perm())
}

// Perm returns the transform's shape permutation. The zero value
// {0,0,0,0} is not a permutation, so a Transform literal built without
// an explicit ShapePerm reads as the identity relabeling.
func (t Transform) Perm() ShapePerm {
	if t.ShapePerm == (ShapePerm{}) {
		return IdentityPerm
	}
	return t.ShapePerm
}

// Inverse returns the transform that undoes t. Color swap is its own
// inverse and commutes with the other two axes.
func (t Transform) Inverse() Transform {
	return Transform{
		D4:        t.D4.Inverse(),
		ColorSwap: t.ColorSwap,
		ShapePerm: t.Perm().Inverse(),
	}
}

// All enumerates the full 384-element group: D4-major, then color swap,
// then shape permutations. No element is omitted and the order carries no
// semantic weight; it only fixes iteration for tests.
func All() []Transform {
	ts := make([]Transform, 0, GroupSize)
	for d := D4(0); d < NumD4; d++ {
		for _, swap := range [2]bool{false, true} {
			for _, perm := range AllShapePerms {
				ts = append(ts, Transform{D4: d, ColorSwap: swap, ShapePerm: perm})
			}
		}
	}
	return ts
}

// Apply returns the image of a state under t: every word is spatially
// permuted, then the color blocks are optionally swapped, then slot s of
// each color block is filled from old shape ShapePerm[s]. Disjointness is
// preserved, since t only permutes squares and relabels slots.
func (t Transform) Apply(s board.State) board.State {
	words := s.Words()

	var g [8]uint16
	for i, w := range words {
		g[i] = Permute16(w, t.D4)
	}

	c0, c1 := 0, board.NumShapes
	if t.ColorSwap {
		c0, c1 = c1, c0
	}

	perm := t.Perm()
	var out [8]uint16
	for sl := 0; sl < board.NumShapes; sl++ {
		out[sl] = g[c0+int(perm[sl])]
		out[board.NumShapes+sl] = g[c1+int(perm[sl])]
	}
	// The words stay pairwise disjoint, so this cannot fail.
	st, err := board.FromWords(out)
	if err != nil {
		panic(err)
	}
	return st
}
