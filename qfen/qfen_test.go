package qfen

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/quantik/board"
)

func TestRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, q := range []string{
		"..../..../..../....",
		"A.bC/..../d..B/...a",
		"AbCd/..../..../....",
		"Aa../.Bb./..Cc/...D",
	} {
		s, err := FromQFEN(q)
		is.NoErr(err)
		is.Equal(ToQFEN(s), q)
	}
}

func TestFromQFEN(t *testing.T) {
	is := is.New(t)
	s, err := FromQFEN("A.bC/..../d..B/...a")
	is.NoErr(err)

	c, sh, ok := s.OccupantAt(0)
	is.True(ok)
	is.Equal(c, board.Player0)
	is.Equal(sh, board.ShapeA)

	c, sh, ok = s.OccupantAt(2)
	is.True(ok)
	is.Equal(c, board.Player1)
	is.Equal(sh, board.ShapeB)

	c, sh, ok = s.OccupantAt(8)
	is.True(ok)
	is.Equal(c, board.Player1)
	is.Equal(sh, board.ShapeD)

	_, _, ok = s.OccupantAt(5)
	is.True(!ok)
}

func TestWhitespaceTolerance(t *testing.T) {
	is := is.New(t)
	s, err := FromQFEN("A... / .... / .... / ...b")
	is.NoErr(err)
	is.Equal(ToQFEN(s), "A.../..../..../...b")
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)
	for _, q := range []string{
		"",
		"..../..../....",           // 3 ranks
		"..../..../..../..../....", // 5 ranks
		"...../..../..../....",     // long rank
		".../..../..../....",       // short rank
		"..E./..../..../....",      // bad letter
		"..../..../..../...X",      // bad letter
		"..1./..../..../....",      // digits are not QFEN
	} {
		_, err := FromQFEN(q)
		is.True(errors.Is(err, ErrParse))
	}
}

func TestCanonicalQFEN(t *testing.T) {
	is := is.New(t)

	// all four of these are one A-piece states, symmetric to each other
	variants := []string{
		"A.../..../..../....",
		"..../..../..../...A",
		"a.../..../..../....",
		"...d/..../..../....",
	}
	canon, err := CanonicalQFEN(variants[0])
	is.NoErr(err)
	for _, v := range variants[1:] {
		got, err := CanonicalQFEN(v)
		is.NoErr(err)
		is.Equal(got, canon)
	}

	// canonicalizing a canonical form is a fixed point
	again, err := CanonicalQFEN(canon)
	is.NoErr(err)
	is.Equal(again, canon)

	_, err = CanonicalQFEN("not a qfen")
	is.True(errors.Is(err, ErrParse))
}
