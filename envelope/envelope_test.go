package envelope

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/quantik/board"
	"github.com/domino14/quantik/symmetry"
)

func testState(t *testing.T) board.State {
	t.Helper()
	s, err := board.FromWords([8]uint16{0x0001, 0, 0x0400, 0, 0x8000, 0, 0, 0x0020})
	require.NoError(t, err)
	return s
}

func TestRoundTrip(t *testing.T) {
	s := testState(t)

	data, err := Marshal(s, false, nil, nil)
	require.NoError(t, err)

	got, env, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Equal(t, board.Version, env.Version)
	assert.False(t, env.Canonical)
	assert.Nil(t, env.MoveCount)
	assert.Nil(t, env.Metadata)
}

func TestOptionalFields(t *testing.T) {
	s := testState(t)
	mc := uint64(4)
	meta := map[string]any{"src": "selfplay", "depth": uint64(9)}

	data, err := Marshal(s, false, &mc, meta)
	require.NoError(t, err)

	_, env, err := Unmarshal(data)
	require.NoError(t, err)
	require.NotNil(t, env.MoveCount)
	assert.Equal(t, uint64(4), *env.MoveCount)
	assert.Equal(t, "selfplay", env.Metadata["src"])
	assert.Equal(t, uint64(9), env.Metadata["depth"])
}

func TestCanonicalPayload(t *testing.T) {
	s := testState(t)

	data, err := Marshal(s, true, nil, nil)
	require.NoError(t, err)

	got, env, err := Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, env.Canonical)

	want := symmetry.CanonicalPayload(s)
	assert.Equal(t, want[:], env.Payload)
	assert.Equal(t, want[:], got.Payload())

	// canonical envelopes of two symmetric states are byte-identical
	rot := symmetry.Transform{D4: symmetry.Rot180, ShapePerm: symmetry.IdentityPerm}.Apply(s)
	data2, err := Marshal(rot, true, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, data, data2)
}

func TestForwardCompat(t *testing.T) {
	// a future writer adds fields this reader has never heard of
	m := map[string]any{
		"v":      board.Version,
		"canon":  false,
		"bb":     board.Empty().Payload(),
		"future": "ignored",
		"n":      uint64(7),
	}
	data, err := cbor.Marshal(m)
	require.NoError(t, err)

	got, env, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, board.Empty(), got)
	assert.False(t, env.Canonical)
}

func TestUnmarshalErrors(t *testing.T) {
	_, _, err := Unmarshal([]byte{0xFF, 0x00})
	assert.ErrorIs(t, err, board.ErrFormat)

	// wrong version
	data, err := cbor.Marshal(map[string]any{"v": 2, "canon": false, "bb": board.Empty().Payload()})
	require.NoError(t, err)
	_, _, err = Unmarshal(data)
	assert.ErrorIs(t, err, board.ErrUnsupportedVersion)

	// missing bb
	data, err = cbor.Marshal(map[string]any{"v": 1, "canon": false})
	require.NoError(t, err)
	_, _, err = Unmarshal(data)
	assert.ErrorIs(t, err, board.ErrFormat)

	// short bb
	data, err = cbor.Marshal(map[string]any{"v": 1, "canon": false, "bb": make([]byte, 8)})
	require.NoError(t, err)
	_, _, err = Unmarshal(data)
	assert.ErrorIs(t, err, board.ErrFormat)

	// overlapping words fail closed with the state taxonomy
	overlap := make([]byte, 16)
	overlap[0], overlap[2] = 0x01, 0x01
	data, err = cbor.Marshal(map[string]any{"v": 1, "canon": false, "bb": overlap})
	require.NoError(t, err)
	_, _, err = Unmarshal(data)
	assert.ErrorIs(t, err, board.ErrInvalidState)
}
